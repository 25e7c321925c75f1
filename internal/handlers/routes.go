package handlers

import (
	"github.com/assaka/aurareach/internal/config"
	"github.com/assaka/aurareach/internal/database"
	"github.com/assaka/aurareach/internal/dto"
	"github.com/assaka/aurareach/internal/middleware"
	"github.com/assaka/aurareach/internal/models"
	"github.com/assaka/aurareach/internal/repository"
	"github.com/gofiber/fiber/v2"
)

// SetupAPIRoutes mounts the /api surface. Auth is public, everything else
// sits behind the bearer-token gate.
func SetupAPIRoutes(app *fiber.App, db *database.DB, cfg *config.Config) {
	api := app.Group("/api")

	SetupAuthRoutes(api.Group("/auth"), cfg)

	protected := api.Group("", middleware.AuthRequired(cfg))

	SetupKeywordRoutes(protected.Group("/keywords"), db)
	SetupLeadRoutes(protected.Group("/leads"), db)

	mountResource[models.AutoSchedule, dto.CreateAutoScheduleRequest, dto.UpdateAutoScheduleRequest](
		protected.Group("/autoschedules"), db, models.AutoScheduleColumns)
	mountResource[models.Campaign, dto.CreateCampaignRequest, dto.UpdateCampaignRequest](
		protected.Group("/campaigns"), db, models.CampaignColumns)
	mountResource[models.Conversation, dto.CreateConversationRequest, dto.UpdateConversationRequest](
		protected.Group("/conversations"), db, models.ConversationColumns)
	mountResource[models.Credit, dto.CreateCreditRequest, dto.UpdateCreditRequest](
		protected.Group("/credits"), db, models.CreditColumns)
	mountResource[models.DataSource, dto.CreateDataSourceRequest, dto.UpdateDataSourceRequest](
		protected.Group("/datasources"), db, models.DataSourceColumns)
	mountResource[models.Destination, dto.CreateDestinationRequest, dto.UpdateDestinationRequest](
		protected.Group("/destinations"), db, models.DestinationColumns)
	mountResource[models.LeadCampaign, dto.CreateLeadCampaignRequest, dto.UpdateLeadCampaignRequest](
		protected.Group("/leadcampaigns"), db, models.LeadCampaignColumns)
	mountResource[models.Mailbox, dto.CreateMailboxRequest, dto.UpdateMailboxRequest](
		protected.Group("/mailboxes"), db, models.MailboxColumns)
	mountResource[models.OutreachCampaign, dto.CreateOutreachCampaignRequest, dto.UpdateOutreachCampaignRequest](
		protected.Group("/outreachcampaigns"), db, models.OutreachCampaignColumns)
	mountResource[models.Post, dto.CreatePostRequest, dto.UpdatePostRequest](
		protected.Group("/posts"), db, models.PostColumns)
}

func mountResource[T any, C CreatePayload[T], U UpdatePayload](router fiber.Router, db *database.DB, columns []string) {
	NewResource[T, C, U](repository.NewRepository[T](db, columns)).Register(router)
}
