package handler

import (
	"github.com/fadilmartias/linkedin-autoapply/internal/dto"
	"github.com/fadilmartias/linkedin-autoapply/internal/response"
	"github.com/fadilmartias/linkedin-autoapply/internal/usecase"
	"github.com/fadilmartias/linkedin-autoapply/internal/util"
	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	uc *usecase.DashboardUsecase
}

func NewDashboardHandler(uc *usecase.DashboardUsecase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

func (h *DashboardHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/applications", h.Applications)
	router.Get("/stats", h.Stats)
}

func (h *DashboardHandler) Applications(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	pageSize := c.QueryInt("page_size", 20)
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > usecase.MaxDashboardRecords {
		pageSize = 20
	}

	apps, total, err := h.uc.List(c.UserContext(), page, pageSize)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to list applications",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:       fiber.StatusOK,
		Message:    "Success get applications",
		Data:       dto.NewApplicationDTOs(apps),
		Pagination: response.NewPagination(page, pageSize, total, len(apps)),
	})
}

func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.uc.Stats(c.UserContext())
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to compute stats",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success get stats",
		Data:    stats,
	})
}
