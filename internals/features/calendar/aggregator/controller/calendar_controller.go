package controller

import (
	"strconv"
	"time"

	"buildops_backend/internals/features/calendar/aggregator/service"
	helper "buildops_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type CalendarController struct {
	Agg *service.Aggregator
}

func NewCalendarController(db *gorm.DB) *CalendarController {
	return &CalendarController{Agg: service.NewAggregator(db)}
}

func loadMessage(res service.Result) string {
	if len(res.FailedSources) > 0 {
		return "Some calendar sources failed to load"
	}
	return "Calendar events"
}

// 🟢 GET /api/u/calendar/events (full unified list)
func (ctrl *CalendarController) GetEvents(c *fiber.Ctx) error {
	res := ctrl.Agg.Aggregate(c.UserContext(), time.Now())
	return helper.JsonOK(c, loadMessage(res), res)
}

// 🟢 GET /api/u/calendar/month?year=2024&month=6 (grid keyed by date)
func (ctrl *CalendarController) GetMonth(c *fiber.Ctx) error {
	now := time.Now()
	year, err := strconv.Atoi(c.Query("year", strconv.Itoa(now.Year())))
	if err != nil || year < 2000 || year > 2100 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid year")
	}
	month, err := strconv.Atoi(c.Query("month", strconv.Itoa(int(now.Month()))))
	if err != nil || month < 1 || month > 12 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid month")
	}

	res := ctrl.Agg.Aggregate(c.UserContext(), now)
	grid := service.MonthGrid(res.Events, year, time.Month(month))

	return helper.JsonOK(c, loadMessage(res), fiber.Map{
		"year":           year,
		"month":          month,
		"days":           grid,
		"failed_sources": res.FailedSources,
	})
}

// 🟢 GET /api/u/calendar/agenda (next 30 days, ascending)
func (ctrl *CalendarController) GetAgenda(c *fiber.Ctx) error {
	now := time.Now()
	res := ctrl.Agg.Aggregate(c.UserContext(), now)

	return helper.JsonOK(c, loadMessage(res), fiber.Map{
		"events":         service.Agenda(res.Events, now),
		"failed_sources": res.FailedSources,
	})
}
