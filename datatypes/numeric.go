package datatypes

import (
	"encoding/binary"
	"math"
	"strconv"

	"github.com/pkg/errors"
)

type numericKind int

const (
	kindUnsigned numericKind = iota
	kindSigned
	kindFloat
)

// NumericType describes one fixed-width numeric encoding: how many bytes
// it occupies, how they are ordered, and how values render as text. The
// whole u8..f64 / little-big endian family is expressed as entries of
// this one descriptor rather than a type per combination.
type NumericType struct {
	Name  string // stable identifier, e.g. "u16le"
	Label string // human label, e.g. "unsigned 16-bit (little endian)"
	Size  int    // storage width in bytes

	kind  numericKind
	order binary.ByteOrder
}

// Format renders raw bytes as text. raw must be exactly Size bytes.
// Integers render in decimal, floats in their shortest round-trip form.
func (numericType NumericType) Format(raw []byte) (string, error) {
	if len(raw) != numericType.Size {
		return "", errors.Errorf("%s value must be %d bytes, got %d", numericType.Name, numericType.Size, len(raw))
	}

	bits := numericType.decode(raw)

	switch numericType.kind {
	case kindUnsigned:
		return strconv.FormatUint(bits, 10), nil
	case kindSigned:
		return strconv.FormatInt(numericType.signExtend(bits), 10), nil
	default:
		if numericType.Size == 4 {
			return strconv.FormatFloat(float64(math.Float32frombits(uint32(bits))), 'g', -1, 32), nil
		}
		return strconv.FormatFloat(math.Float64frombits(bits), 'g', -1, 64), nil
	}
}

// Parse converts text into the type's byte encoding. Malformed,
// out-of-range or wrong-kind input returns an error and no bytes.
// Integers accept the usual prefixes (0x, 0o, 0b) besides decimal.
func (numericType NumericType) Parse(value string) ([]byte, error) {
	bitSize := numericType.Size * 8

	var bits uint64
	switch numericType.kind {
	case kindUnsigned:
		parsed, err := strconv.ParseUint(value, 0, bitSize)
		if err != nil {
			return nil, errors.Wrapf(err, "parsing %s value", numericType.Name)
		}
		bits = parsed
	case kindSigned:
		parsed, err := strconv.ParseInt(value, 0, bitSize)
		if err != nil {
			return nil, errors.Wrapf(err, "parsing %s value", numericType.Name)
		}
		bits = uint64(parsed)
	default:
		parsed, err := strconv.ParseFloat(value, bitSize)
		if err != nil {
			return nil, errors.Wrapf(err, "parsing %s value", numericType.Name)
		}
		if numericType.Size == 4 {
			bits = uint64(math.Float32bits(float32(parsed)))
		} else {
			bits = math.Float64bits(parsed)
		}
	}

	return numericType.encode(bits), nil
}

func (numericType NumericType) decode(raw []byte) uint64 {
	switch numericType.Size {
	case 1:
		return uint64(raw[0])
	case 2:
		return uint64(numericType.order.Uint16(raw))
	case 4:
		return uint64(numericType.order.Uint32(raw))
	default:
		return numericType.order.Uint64(raw)
	}
}

func (numericType NumericType) encode(bits uint64) []byte {
	raw := make([]byte, numericType.Size)
	switch numericType.Size {
	case 1:
		raw[0] = byte(bits)
	case 2:
		numericType.order.PutUint16(raw, uint16(bits))
	case 4:
		numericType.order.PutUint32(raw, uint32(bits))
	default:
		numericType.order.PutUint64(raw, bits)
	}
	return raw
}

func (numericType NumericType) signExtend(bits uint64) int64 {
	shift := 64 - uint(numericType.Size*8)
	return int64(bits<<shift) >> shift
}
