package handler

import (
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/render"

	"github.com/PyroSamurai/rehex/api"
	"github.com/PyroSamurai/rehex/api/dto"
	"github.com/PyroSamurai/rehex/datatypes"
)

func dataTypes(router chi.Router) {
	router.Get("/", getDataTypes)
}

func getDataTypes(writer http.ResponseWriter, request *http.Request) {
	list := &dto.TypeDescriptionList{
		List: make([]dto.TypeDescription, 0),
	}
	for _, numericType := range datatypes.Types() {
		list.List = append(list.List, dto.TypeDescription{
			Name:  numericType.Name,
			Label: numericType.Label,
			Size:  numericType.Size,
		})
	}

	if err := render.Render(writer, request, list); err != nil {
		render.Render(writer, request, api.ErrorRender(err)) //nolint
	}
}
