package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/loan-tracker/backend/internal/httputil"
	"github.com/loan-tracker/backend/internal/models"
)

// RegisterLoanRoutes registers the routes for loans with
// the RouterGroup that is passed.
func RegisterLoanRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsLoanList)
		r.GET("", GetLoans)
		r.POST("", CreateLoan)
	}

	// Loan with ID
	{
		r.OPTIONS("/:id", OptionsLoanDetail)
		r.GET("/:id", GetLoan)
		r.PUT("/:id", UpdateLoan)
		r.DELETE("/:id", DeleteLoan)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Loans
// @Success		204
// @Router			/loans [options]
func OptionsLoanList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Loans
// @Success		204
// @Failure		400	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Failure		500	{object}	httputil.HTTPError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/loans/{id} [options]
func OptionsLoanDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	err = models.DB.Select("id").Where("id = ?", uri.ID.UUID).First(&models.Loan{}).Error
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	httputil.OptionsGetPutDelete(c)
}

// @Summary		Get loans
// @Description	Returns all loans, newest first
// @Tags			Loans
// @Produce		json
// @Success		200	{array}		Loan
// @Failure		500	{object}	httputil.HTTPError
// @Router			/loans [get]
func GetLoans(c *gin.Context) {
	var loans []models.Loan

	err := models.DB.
		Select(models.LoanColumns).
		Order("created_at DESC").
		Find(&loans).Error
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	data := make([]Loan, 0, len(loans))
	for _, loan := range loans {
		data = append(data, newLoan(loan))
	}

	c.JSON(http.StatusOK, data)
}

// @Summary		Get loan
// @Description	Returns a specific loan
// @Tags			Loans
// @Produce		json
// @Success		200	{object}	Loan
// @Failure		400	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Failure		500	{object}	httputil.HTTPError
// @Param			id	path		URIID	true	"ID formatted as string"
// @Router			/loans/{id} [get]
func GetLoan(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	loan, err := getLoan(uri)
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	c.JSON(http.StatusOK, newLoan(loan))
}

// @Summary		Create loan
// @Description	Creates a new loan. friend_name, description, category_id and status_id must not be empty.
// @Tags			Loans
// @Accept			json
// @Produce		json
// @Success		201		{object}	Loan
// @Failure		400		{object}	httputil.HTTPError
// @Failure		500		{object}	httputil.HTTPError
// @Param			loan	body		LoanCreate	true	"Loan"
// @Router			/loans [post]
func CreateLoan(c *gin.Context) {
	var create LoanCreate

	err := httputil.BindData(c, &create)
	if err != nil {
		var validationErr httputil.ValidationError
		if errors.As(err, &validationErr) {
			err = errLoanRequiredFields
		}

		httputil.NewError(c, status(err), err)
		return
	}

	loan := create.editable().model()
	err = models.DB.Create(&loan).Error
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	c.JSON(http.StatusCreated, newLoan(loan))
}

// @Summary		Update loan
// @Description	Updates a loan. All fields are overwritten, fields missing in the body are set to null.
// @Tags			Loans
// @Accept			json
// @Produce		json
// @Success		200		{object}	Loan
// @Failure		400		{object}	httputil.HTTPError
// @Failure		404		{object}	httputil.HTTPError
// @Failure		500		{object}	httputil.HTTPError
// @Param			id		path		URIID			true	"ID formatted as string"
// @Param			loan	body		LoanEditable	true	"Loan"
// @Router			/loans/{id} [put]
func UpdateLoan(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	var editable LoanEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	loan := editable.model()
	err = models.DB.
		Model(&models.Loan{}).
		Where("id = ?", uri.ID.UUID).
		Select(models.LoanEditableColumns).
		Updates(&loan).Error
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	// An update that matched no row changes nothing, reading
	// the loan reports it as missing
	loan, err = getLoan(uri)
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	c.JSON(http.StatusOK, newLoan(loan))
}

// @Summary		Delete loan
// @Description	Deletes a loan. Deleting a loan that does not exist succeeds.
// @Tags			Loans
// @Success		204
// @Failure		400	{object}	httputil.HTTPError
// @Failure		500	{object}	httputil.HTTPError
// @Param			id	path		URIID	true	"ID formatted as string"
// @Router			/loans/{id} [delete]
func DeleteLoan(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	err = models.DB.Where("id = ?", uri.ID.UUID).Delete(&models.Loan{}).Error
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	c.Status(http.StatusNoContent)
}

// getLoan reads the loan identified by uri.
func getLoan(uri URIID) (models.Loan, error) {
	var loan models.Loan

	err := models.DB.
		Select(models.LoanColumns).
		Where("id = ?", uri.ID.UUID).
		First(&loan).Error
	if err != nil {
		return models.Loan{}, err
	}

	return loan, nil
}
