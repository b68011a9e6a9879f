package handler

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/shiftwise-dev/rota-manager/backend/internal/config"
	"github.com/shiftwise-dev/rota-manager/backend/internal/repository"
)

type Handler struct {
	validate      *validator.Validate
	config        *config.Config
	repository    *repository.Repository
	translator    ut.Translator
	notifyChannel *amqp.Channel
	redisClient   *redis.Client

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, repo *repository.Repository, notifyCh *amqp.Channel, rdb *redis.Client) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	return &Handler{
		validate:      validate,
		config:        cfg,
		repository:    repo,
		translator:    trans,
		notifyChannel: notifyCh,
		redisClient:   rdb,

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	h.Mux.Route("/employees", func(r chi.Router) {
		r.Post("/", h.CreateEmployee)
		r.Get("/", h.GetAllEmployees)
		r.Route("/{id}", func(r chi.Router) {
			r.Use(h.employee)
			r.Get("/", h.GetEmployee)
			r.Patch("/", h.UpdateEmployee)
			r.Delete("/", h.DeleteEmployee)
		})
	})

	h.Mux.Route("/shifts", func(r chi.Router) {
		r.Post("/", h.CreateShift)
		r.Get("/", h.GetAllShifts)
		r.Route("/{id}", func(r chi.Router) {
			r.Use(h.shift)
			r.Get("/", h.GetShift)
			r.Patch("/", h.UpdateShift)
			r.Delete("/", h.DeleteShift)
		})
	})

	h.Mux.Route("/assignments", func(r chi.Router) {
		r.Post("/", h.CreateAssignment)
		r.Post("/validate", h.ValidateAssignment)
		r.Get("/", h.GetAllAssignments)
		r.Route("/{id}", func(r chi.Router) {
			r.Use(h.assignment)
			r.Get("/", h.GetAssignment)
			r.Patch("/status", h.UpdateAssignmentStatus)
			r.Delete("/", h.DeleteAssignment)
		})
	})

	h.Mux.Route("/business-hours", func(r chi.Router) {
		r.Get("/", h.GetBusinessHours)
		r.Put("/", h.PutBusinessHours)
	})

	h.Mux.Get("/schedules/week", h.GetWeeklySchedule)
	h.Mux.Post("/grid/preview", h.PreviewWeekGrid)

	h.Mux.Route("/stats", func(r chi.Router) {
		r.Get("/dashboard", h.GetDashboardStats)
		r.With(h.employee).Get("/employees/{id}", h.GetEmployeeStats)
		r.With(h.shift).Get("/shifts/{id}", h.GetShiftStats)
	})
}
