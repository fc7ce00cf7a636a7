package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/render"

	"github.com/PyroSamurai/rehex/api"
	"github.com/PyroSamurai/rehex/api/dto"
	"github.com/PyroSamurai/rehex/datatypes"
)

func documentValues(router chi.Router) {
	router.Get("/value", getDocumentValue)
	router.Put("/value", putDocumentValue)
}

func getDocumentValue(writer http.ResponseWriter, request *http.Request) {
	typeName := request.URL.Query().Get("type")
	numericType, ok := datatypes.Get(typeName)
	if !ok {
		render.Render(writer, request, api.ErrorInvalidRequest(fmt.Errorf("unknown data type '%s'", typeName))) //nolint
		return
	}

	offset, err := strconv.ParseInt(request.URL.Query().Get("offset"), 10, 64)
	if err != nil {
		render.Render(writer, request, api.ErrorInvalidRequest(fmt.Errorf("invalid offset '%s'", request.URL.Query().Get("offset")))) //nolint
		return
	}

	region, err := datatypes.NewRegion(document, numericType, offset)
	if err != nil {
		render.Render(writer, request, api.ErrorInvalidRequest(err)) //nolint
		return
	}

	value, err := region.FormatValue()
	if err != nil {
		render.Render(writer, request, api.ErrorInternalServer(err)) //nolint
		return
	}

	response := &dto.DocumentValue{
		Type:   numericType.Name,
		Offset: offset,
		Value:  value,
	}
	if err := render.Render(writer, request, response); err != nil {
		render.Render(writer, request, api.ErrorRender(err)) //nolint
	}
}

func putDocumentValue(writer http.ResponseWriter, request *http.Request) {
	value := &dto.DocumentValue{}
	if err := render.Bind(request, value); err != nil {
		render.Render(writer, request, api.ErrorInvalidRequest(err)) //nolint
		return
	}

	numericType, ok := datatypes.Get(value.Type)
	if !ok {
		render.Render(writer, request, api.ErrorInvalidRequest(fmt.Errorf("unknown data type '%s'", value.Type))) //nolint
		return
	}

	region, err := datatypes.NewRegion(document, numericType, value.Offset)
	if err != nil {
		render.Render(writer, request, api.ErrorInvalidRequest(err)) //nolint
		return
	}

	if err := region.WriteStringValue(value.Value); err != nil {
		render.Render(writer, request, api.ErrorInvalidRequest(err)) //nolint
		return
	}

	if err := render.Render(writer, request, value); err != nil {
		render.Render(writer, request, api.ErrorRender(err)) //nolint
	}
}
