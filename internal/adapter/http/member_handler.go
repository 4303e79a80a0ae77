package http

import (
	"net/http"

	"koperasi-backend/internal/usecase/member"

	"github.com/labstack/echo/v4"
)

type MemberHandler struct{ uc *member.Usecase }

func NewMemberHandler(uc *member.Usecase) *MemberHandler { return &MemberHandler{uc: uc} }

type memberReq struct {
	FullName         string `json:"full_name"          validate:"required,max=255"`
	Email            string `json:"email"              validate:"omitempty,email"`
	NationalID       string `json:"national_id"        validate:"omitempty,max=32"`
	BirthPlace       string `json:"birth_place"        validate:"omitempty,max=128"`
	BirthDate        string `json:"birth_date"         validate:"omitempty,datetime=2006-01-02"`
	Gender           string `json:"gender"             validate:"omitempty,oneof=laki-laki perempuan"`
	Address          string `json:"address"`
	Phone            string `json:"phone"              validate:"omitempty,max=32"`
	Occupation       string `json:"occupation"         validate:"omitempty,max=128"`
	SpouseNationalID string `json:"spouse_national_id" validate:"omitempty,max=32"`
	PhotoURL         string `json:"photo_url"          validate:"omitempty,url"`
}

func (r memberReq) input() member.CreateMemberInput {
	return member.CreateMemberInput{
		FullName:         r.FullName,
		Email:            r.Email,
		NationalID:       r.NationalID,
		BirthPlace:       r.BirthPlace,
		BirthDate:        r.BirthDate,
		Gender:           r.Gender,
		Address:          r.Address,
		Phone:            r.Phone,
		Occupation:       r.Occupation,
		SpouseNationalID: r.SpouseNationalID,
		PhotoURL:         r.PhotoURL,
	}
}

func (h *MemberHandler) bindValidated(c echo.Context) (*memberReq, error) {
	var req memberReq
	if err := c.Bind(&req); err != nil {
		return nil, c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return nil, c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	return &req, nil
}

func (h *MemberHandler) CreateMember(c echo.Context) error {
	req, err := h.bindValidated(c)
	if req == nil {
		return err
	}
	dto, err := h.uc.Create(c.Request().Context(), req.input())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *MemberHandler) GetMember(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("member_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *MemberHandler) ListMembers(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *MemberHandler) UpdateMember(c echo.Context) error {
	req, err := h.bindValidated(c)
	if req == nil {
		return err
	}
	dto, err := h.uc.Update(c.Request().Context(), c.Param("member_id"), req.input())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *MemberHandler) LockMember(c echo.Context) error   { return h.setLocked(c, true) }
func (h *MemberHandler) UnlockMember(c echo.Context) error { return h.setLocked(c, false) }

func (h *MemberHandler) setLocked(c echo.Context, locked bool) error {
	dto, err := h.uc.SetLocked(c.Request().Context(), c.Param("member_id"), locked)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *MemberHandler) DeleteMember(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("member_id")); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
