package handler

import (
	"net/http"

	"pharmastock/internal/dto"
	"pharmastock/internal/service"

	"github.com/gin-gonic/gin"
)

type DrugsHandler struct{ svc service.DrugService }

func NewDrugsHandler(svc service.DrugService) *DrugsHandler { return &DrugsHandler{svc: svc} }

// List godoc
// @Summary      List drugs
// @Description  Every drug with its stock lots and total amount, optionally filtered by type.
// @Tags         drugs
// @Produce      json
// @Param        drug_type query    string false "drug or herb"
// @Success      200       {object} dto.Envelope{data=[]dto.DrugResponse}
// @Failure      400       {object} apierror.ValidationError
// @Router       /drugs [get]
func (h *DrugsHandler) List(c *gin.Context) {
	var filter dto.DrugFilter
	if !bindQuery(c, &filter) {
		return
	}
	drugs, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK("drugs", drugs))
}

// Search godoc
// @Summary      Search drugs by name
// @Description  Case-insensitive substring match on the drug name.
// @Tags         drugs
// @Produce      json
// @Param        name query    string true "name fragment"
// @Success      200  {object} dto.Envelope{data=[]dto.DrugResponse}
// @Failure      400  {object} apierror.APIError
// @Router       /drugs/search [get]
func (h *DrugsHandler) Search(c *gin.Context) {
	drugs, err := h.svc.Search(c.Request.Context(), c.Query("name"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK("search results", drugs))
}

// Get godoc
// @Summary      Get a drug
// @Tags         drugs
// @Produce      json
// @Param        id  path     string true "drug UUID"
// @Success      200 {object} dto.Envelope{data=dto.DrugResponse}
// @Failure      400 {object} apierror.APIError
// @Failure      404 {object} apierror.APIError
// @Router       /drugs/{id} [get]
func (h *DrugsHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	drug, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK("drug", drug))
}

// Create godoc
// @Summary      Create a drug
// @Description  Creates the drug and, when stock is given, its first lot in the same transaction.
// @Tags         drugs
// @Accept       json
// @Produce      json
// @Param        body body     dto.CreateDrugRequest true "drug"
// @Success      201  {object} dto.Envelope{data=dto.DrugResponse}
// @Failure      400  {object} apierror.ValidationError
// @Router       /drugs [post]
func (h *DrugsHandler) Create(c *gin.Context) {
	var req dto.CreateDrugRequest
	if !bindAndValidate(c, &req) {
		return
	}
	drug, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.OK("drug created", drug))
}

// Update godoc
// @Summary      Update a drug
// @Description  Applies the fields present in drugData; lots are untouched.
// @Tags         drugs
// @Accept       json
// @Produce      json
// @Param        body body     dto.UpdateDrugRequest true "drug id and changed fields"
// @Success      200  {object} dto.Envelope{data=dto.DrugResponse}
// @Failure      400  {object} apierror.ValidationError
// @Failure      404  {object} apierror.APIError
// @Router       /drugs/update [patch]
func (h *DrugsHandler) Update(c *gin.Context) {
	var req dto.UpdateDrugRequest
	if !bindAndValidate(c, &req) {
		return
	}
	drug, err := h.svc.Update(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK("drug updated", drug))
}

// Delete godoc
// @Summary      Delete a drug
// @Description  Removes the drug together with all of its stock lots.
// @Tags         drugs
// @Produce      json
// @Param        id  path     string true "drug UUID"
// @Success      200 {object} dto.Envelope
// @Failure      400 {object} apierror.APIError
// @Failure      404 {object} apierror.APIError
// @Router       /drugs/{id} [delete]
func (h *DrugsHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK("drug deleted", nil))
}
