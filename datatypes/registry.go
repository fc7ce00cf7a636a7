package datatypes

import "encoding/binary"

// One entry per width/signedness/endianness combination, in the order an
// editor would list them.
var numericTypes = []NumericType{
	{Name: "u8", Label: "unsigned 8-bit", Size: 1, kind: kindUnsigned, order: binary.LittleEndian},
	{Name: "s8", Label: "signed 8-bit", Size: 1, kind: kindSigned, order: binary.LittleEndian},

	{Name: "u16le", Label: "unsigned 16-bit (little endian)", Size: 2, kind: kindUnsigned, order: binary.LittleEndian},
	{Name: "u16be", Label: "unsigned 16-bit (big endian)", Size: 2, kind: kindUnsigned, order: binary.BigEndian},
	{Name: "s16le", Label: "signed 16-bit (little endian)", Size: 2, kind: kindSigned, order: binary.LittleEndian},
	{Name: "s16be", Label: "signed 16-bit (big endian)", Size: 2, kind: kindSigned, order: binary.BigEndian},

	{Name: "u32le", Label: "unsigned 32-bit (little endian)", Size: 4, kind: kindUnsigned, order: binary.LittleEndian},
	{Name: "u32be", Label: "unsigned 32-bit (big endian)", Size: 4, kind: kindUnsigned, order: binary.BigEndian},
	{Name: "s32le", Label: "signed 32-bit (little endian)", Size: 4, kind: kindSigned, order: binary.LittleEndian},
	{Name: "s32be", Label: "signed 32-bit (big endian)", Size: 4, kind: kindSigned, order: binary.BigEndian},

	{Name: "u64le", Label: "unsigned 64-bit (little endian)", Size: 8, kind: kindUnsigned, order: binary.LittleEndian},
	{Name: "u64be", Label: "unsigned 64-bit (big endian)", Size: 8, kind: kindUnsigned, order: binary.BigEndian},
	{Name: "s64le", Label: "signed 64-bit (little endian)", Size: 8, kind: kindSigned, order: binary.LittleEndian},
	{Name: "s64be", Label: "signed 64-bit (big endian)", Size: 8, kind: kindSigned, order: binary.BigEndian},

	{Name: "f32le", Label: "32-bit float (little endian)", Size: 4, kind: kindFloat, order: binary.LittleEndian},
	{Name: "f32be", Label: "32-bit float (big endian)", Size: 4, kind: kindFloat, order: binary.BigEndian},
	{Name: "f64le", Label: "64-bit float (little endian)", Size: 8, kind: kindFloat, order: binary.LittleEndian},
	{Name: "f64be", Label: "64-bit float (big endian)", Size: 8, kind: kindFloat, order: binary.BigEndian},
}

var numericTypesByName = func() map[string]NumericType {
	byName := make(map[string]NumericType, len(numericTypes))
	for _, numericType := range numericTypes {
		byName[numericType.Name] = numericType
	}
	return byName
}()

// Types returns every registered numeric type in registration order.
func Types() []NumericType {
	out := make([]NumericType, len(numericTypes))
	copy(out, numericTypes)
	return out
}

// Get looks a numeric type up by its stable name.
func Get(name string) (NumericType, bool) {
	numericType, ok := numericTypesByName[name]
	return numericType, ok
}
