package handler

import (
	membershipapp "github.com/assetledger/backend/internal/application/membership"
	"github.com/gin-gonic/gin"
)

// MembershipHandler handles identifier, member and company endpoints
type MembershipHandler struct {
	BaseHandler
	identifiers *membershipapp.IdentifierService
	members     *membershipapp.MemberService
	companies   *membershipapp.CompanyService
}

// NewMembershipHandler creates a new MembershipHandler
func NewMembershipHandler(
	identifiers *membershipapp.IdentifierService,
	members *membershipapp.MemberService,
	companies *membershipapp.CompanyService,
) *MembershipHandler {
	return &MembershipHandler{
		identifiers: identifiers,
		members:     members,
		companies:   companies,
	}
}

// AllocateIdentifier godoc
// @ID           allocateIdentifier
// @Summary      Allocate the next member or company code
// @Description  Member codes take the role as discriminant (A, N, L, B prefixes). Company codes take none.
// @Tags         identifiers
// @Accept       json
// @Produce      json
// @Param        request body membershipapp.AllocateIdentifierRequest true "Category and discriminant"
// @Success      201 {object} APIResponse[membershipapp.IdentifierResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /identifiers [post]
func (h *MembershipHandler) AllocateIdentifier(c *gin.Context) {
	var req membershipapp.AllocateIdentifierRequest
	if !h.bindJSON(c, &req) {
		return
	}

	resp, err := h.identifiers.AllocateFromRequest(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// RegisterMember godoc
// @ID           registerMember
// @Summary      Register a member
// @Tags         members
// @Accept       json
// @Produce      json
// @Param        request body membershipapp.RegisterMemberRequest true "Member registration"
// @Success      201 {object} APIResponse[membershipapp.MemberResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /members [post]
func (h *MembershipHandler) RegisterMember(c *gin.Context) {
	var req membershipapp.RegisterMemberRequest
	if !h.bindJSON(c, &req) {
		return
	}

	resp, err := h.members.Register(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// GetMember godoc
// @ID           getMember
// @Summary      Get a member by ID
// @Tags         members
// @Produce      json
// @Param        id path string true "Member ID" format(uuid)
// @Success      200 {object} APIResponse[membershipapp.MemberResponse]
// @Failure      404 {object} ErrorResponse
// @Router       /members/{id} [get]
func (h *MembershipHandler) GetMember(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	resp, err := h.members.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// ListMembers godoc
// @ID           listMembers
// @Summary      List members
// @Tags         members
// @Produce      json
// @Param        role      query string false "Role filter" Enums(admin, normal, lifetime, business)
// @Param        status    query string false "Status filter" Enums(pending, active, disabled)
// @Param        page      query int    false "Page number" default(1)
// @Param        page_size query int    false "Page size" default(20)
// @Success      200 {object} APIResponse[[]membershipapp.MemberResponse]
// @Failure      400 {object} ErrorResponse
// @Router       /members [get]
func (h *MembershipHandler) ListMembers(c *gin.Context) {
	var filter membershipapp.MemberListFilter
	if !h.bindQuery(c, &filter) {
		return
	}

	page, err := h.members.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	Paginated(c, page)
}

// ActivateMember godoc
// @ID           activateMember
// @Summary      Activate a pending or disabled member
// @Tags         members
// @Produce      json
// @Param        id path string true "Member ID" format(uuid)
// @Success      200 {object} APIResponse[membershipapp.MemberResponse]
// @Failure      404 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Router       /members/{id}/activate [post]
func (h *MembershipHandler) ActivateMember(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	resp, err := h.members.Activate(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// DisableMember godoc
// @ID           disableMember
// @Summary      Disable an active member
// @Tags         members
// @Produce      json
// @Param        id path string true "Member ID" format(uuid)
// @Success      200 {object} APIResponse[membershipapp.MemberResponse]
// @Failure      404 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Router       /members/{id}/disable [post]
func (h *MembershipHandler) DisableMember(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	resp, err := h.members.Disable(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// RegisterCompany godoc
// @ID           registerCompany
// @Summary      Register a company
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        request body membershipapp.RegisterCompanyRequest true "Company registration"
// @Success      201 {object} APIResponse[membershipapp.CompanyResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /companies [post]
func (h *MembershipHandler) RegisterCompany(c *gin.Context) {
	var req membershipapp.RegisterCompanyRequest
	if !h.bindJSON(c, &req) {
		return
	}

	resp, err := h.companies.Register(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// GetCompany godoc
// @ID           getCompany
// @Summary      Get a company by ID
// @Tags         companies
// @Produce      json
// @Param        id path string true "Company ID" format(uuid)
// @Success      200 {object} APIResponse[membershipapp.CompanyResponse]
// @Failure      404 {object} ErrorResponse
// @Router       /companies/{id} [get]
func (h *MembershipHandler) GetCompany(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	resp, err := h.companies.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// PageQuery carries pagination query parameters
type PageQuery struct {
	Page     int `form:"page" binding:"omitempty,min=1"`
	PageSize int `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// ListCompanies godoc
// @ID           listCompanies
// @Summary      List companies
// @Tags         companies
// @Produce      json
// @Param        page      query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(20)
// @Success      200 {object} APIResponse[[]membershipapp.CompanyResponse]
// @Router       /companies [get]
func (h *MembershipHandler) ListCompanies(c *gin.Context) {
	var q PageQuery
	if !h.bindQuery(c, &q) {
		return
	}

	page, err := h.companies.List(c.Request.Context(), q.Page, q.PageSize)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	Paginated(c, page)
}
