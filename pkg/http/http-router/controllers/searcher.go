package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"

	"github.com/bootinge/omim/pkg/datastructure"
	helper "github.com/bootinge/omim/pkg/http/http-router/router-helper"
	"github.com/bootinge/omim/pkg/region"
	"github.com/bootinge/omim/pkg/search"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/julienschmidt/httprouter"

	"go.uber.org/zap"
)

var (
	regexSearch = regexp.MustCompile("^[A-Za-z0-9_ +,.()-]+$")
)

const defaultResultsNeeded = 10

type searchAPI struct {
	searchService SearchService
	log           *zap.Logger
}

func New(searchService SearchService, log *zap.Logger) *searchAPI {
	return &searchAPI{
		searchService: searchService,
		log:           log,
	}
}

func (api *searchAPI) Routes(group *helper.RouteGroup) {
	group.GET("/search", api.search)
	group.GET("/autocomplete", api.autocomplete)
	group.GET("/reverse", api.reverseGeocoding)
}

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// searchRequest model info
//
//	@Description	request body for feature search, with an optional user
//	position used by the ranker's byUserDistance criterion.
type searchRequest struct {
	Query         string   `json:"query" validate:"required"`
	ResultsNeeded int      `json:"results_needed" validate:"min=0,max=100"`
	Lat           *float64 `json:"lat" validate:"omitempty,min=-90,max=90"`
	Lon           *float64 `json:"lon" validate:"omitempty,min=-180,max=180"`
}

// searchResponse model info
//
//	@Description	response body for feature search results.
type searchResponse struct {
	Data []search.FinalResult `json:"data"`
}

func (req searchRequest) position() datastructure.Position {
	if req.Lat == nil || req.Lon == nil {
		return datastructure.NoPosition
	}
	return datastructure.NewPosition(*req.Lat, *req.Lon)
}

func (req searchRequest) resultsNeeded() int {
	if req.ResultsNeeded == 0 {
		return defaultResultsNeeded
	}
	return req.ResultsNeeded
}

func (api *searchAPI) decodeAndValidate(w http.ResponseWriter, r *http.Request, request interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		api.BadRequestResponse(w, r, err)
		return false
	}

	validate := validator.New()
	if err := validate.Struct(request); err != nil {
		english := en.New()
		uni := ut.New(english, english)
		trans, _ := uni.GetTranslator("en")
		_ = enTranslations.RegisterDefaultTranslations(validate, trans)
		vv := translateError(err, trans)
		vvString := make([]string, 0, len(vv))
		for _, v := range vv {
			vvString = append(vvString, v.Error())
		}
		api.BadRequestResponse(w, r, fmt.Errorf("validation error: %v", vvString))
		return false
	}
	return true
}

// search godoc
// @Summary		search for geographic features matching a free-form query within a viewport.
// @Description	search for geographic features matching a free-form query within a viewport.
// @Tags			search
// @ID search
// @Param			body	body	searchRequest	true
// @Accept			application/json
// @Produce		application/json
// @Router			/api/search [get]
// @Success		200	{object}	searchResponse
// @Failure		400	{object}	errorResponse
// @Failure		500	{object}	errorResponse
func (api *searchAPI) search(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var request searchRequest
	if !api.decodeAndValidate(w, r, &request) {
		return
	}
	if !regexSearch.MatchString(request.Query) {
		api.BadRequestResponse(w, r, fmt.Errorf("validation error: query must be alphanumeric or contain the special characters +, -, ., (, ), ,"))
		return
	}

	results, err := api.searchService.Search(request.Query, request.position(), request.resultsNeeded())
	if err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": results}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

// autocomplete godoc
// @Summary		autocomplete typeahead results for a partially typed query.
// @Description	autocomplete typeahead results for a partially typed query; a bare trailing token is treated as a prefix by the query normalizer.
// @Tags			search
// @ID autocomplete
// @Param			body	body	searchRequest	true
// @Accept			application/json
// @Produce		application/json
// @Router			/api/autocomplete [get]
// @Success		200	{object}	searchResponse
// @Failure		400	{object}	errorResponse
// @Failure		500	{object}	errorResponse
func (api *searchAPI) autocomplete(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var request searchRequest
	if !api.decodeAndValidate(w, r, &request) {
		return
	}
	if !regexSearch.MatchString(request.Query) {
		api.BadRequestResponse(w, r, fmt.Errorf("validation error: query must be alphanumeric or contain the special characters +, -, ., (, ), ,"))
		return
	}

	results, err := api.searchService.Autocomplete(request.Query, request.position(), request.resultsNeeded())
	if err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": results}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

type reverseGeocodingRequest struct {
	Lat float64 `json:"lat" validate:"required,min=-90,max=90"`
	Lon float64 `json:"lon" validate:"required,min=-180,max=180"`
}

type reverseGeocodingResponse struct {
	Data region.Label `json:"data"`
}

// reverseGeocoding godoc
// @Summary		reverseGeocoding resolves the administrative region label nearest a coordinate.
// @Description	reverseGeocoding resolves the administrative region label nearest a coordinate.
// @Tags			search
// @ID reverse-geocoding
// @Param			body	body	reverseGeocodingRequest	true
// @Accept			application/json
// @Produce		application/json
// @Router			/api/reverse [get]
// @Success		200	{object}	reverseGeocodingResponse
// @Failure		400	{object}	errorResponse
// @Failure		500	{object}	errorResponse
func (api *searchAPI) reverseGeocoding(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var request reverseGeocodingRequest
	if !api.decodeAndValidate(w, r, &request) {
		return
	}

	label := api.searchService.ReverseGeocoding(request.Lat, request.Lon)

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": label}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

func translateError(err error, trans ut.Translator) (errs []error) {
	if err == nil {
		return nil
	}
	validatorErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []error{err}
	}
	for _, e := range validatorErrs {
		errs = append(errs, fmt.Errorf("%s", e.Translate(trans)))
	}
	return errs
}
