package route

import (
	"buildops_backend/internals/configs"
	calendarRoute "buildops_backend/internals/features/calendar/aggregator/route"
	entryRoute "buildops_backend/internals/features/calendar/entries/route"
	eventRoute "buildops_backend/internals/features/calendar/events/route"
	contactRoute "buildops_backend/internals/features/contacts/contacts/route"
	timeEntryRoute "buildops_backend/internals/features/crews/time_entries/route"
	vehicleRoute "buildops_backend/internals/features/fleet/vehicles/route"
	taskRoute "buildops_backend/internals/features/jobs/completed_tasks/route"
	documentRoute "buildops_backend/internals/features/jobs/documents/route"
	jobRoute "buildops_backend/internals/features/jobs/jobs/route"
	materialRoute "buildops_backend/internals/features/jobs/materials/route"
	mailRoute "buildops_backend/internals/features/mail/route"
	reportRoute "buildops_backend/internals/features/reports/route"
	scheduleRoute "buildops_backend/internals/features/subcontractors/schedules/route"
	subcontractorRoute "buildops_backend/internals/features/subcontractors/subcontractors/route"
	authRoute "buildops_backend/internals/features/users/auth/route"
	middleware "buildops_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupRoutes mounts the three route tiers:
//
//	/api/public  no token (login)
//	/api/u       any signed-in user
//	/api/a       admin role
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")

	// ===== Public =====
	public := api.Group("/public")
	authRoute.AuthPublicRoutes(public, db)

	// ===== Staff =====
	user := api.Group("/u",
		middleware.AuthJWT(middleware.AuthJWTOpts{
			Secret:              configs.JWTSecret,
			AllowCookieFallback: true,
		}),
	)
	authRoute.AuthUserRoutes(user, db)
	jobRoute.JobUserRoutes(user, db)
	materialRoute.MaterialUserRoutes(user, db)
	taskRoute.CompletedTaskUserRoutes(user, db)
	documentRoute.DocumentUserRoutes(user, db)
	subcontractorRoute.SubcontractorUserRoutes(user, db)
	scheduleRoute.ScheduleUserRoutes(user, db)
	eventRoute.CalendarEventUserRoutes(user, db)
	entryRoute.CalendarEntryUserRoutes(user, db)
	calendarRoute.CalendarUserRoutes(user, db)
	vehicleRoute.VehicleUserRoutes(user, db)
	timeEntryRoute.TimeEntryUserRoutes(user, db)
	contactRoute.ContactUserRoutes(user, db)
	reportRoute.ReportUserRoutes(user, db)

	// ===== Admin =====
	admin := api.Group("/a",
		middleware.AuthJWT(middleware.AuthJWTOpts{
			Secret:              configs.JWTSecret,
			AllowCookieFallback: true,
		}),
		middleware.RequireAdmin(),
	)
	authRoute.AuthAdminRoutes(admin, db)
	jobRoute.JobAdminRoutes(admin, db)
	subcontractorRoute.SubcontractorAdminRoutes(admin, db)
	vehicleRoute.VehicleAdminRoutes(admin, db)
	contactRoute.ContactAdminRoutes(admin, db)
	mailRoute.MailAdminRoutes(admin, db)
}
