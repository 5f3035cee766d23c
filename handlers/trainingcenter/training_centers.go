package trainingcenter

import (
	"github.com/gofiber/fiber/v2"
	"github.com/traini8/backend/database"
	"github.com/traini8/backend/model"
	"github.com/traini8/backend/utils/response"
	"github.com/traini8/backend/utils/validation"
)

// TrainingCenterHandler handles training-center registration and lookup
type TrainingCenterHandler struct {
	store     database.Storage
	validator *validation.Validator
}

// NewTrainingCenterHandler creates a new training center handler
func NewTrainingCenterHandler(store database.Storage) *TrainingCenterHandler {
	return &TrainingCenterHandler{
		store:     store,
		validator: validation.NewValidator(),
	}
}

// CreateTrainingCenter handles POST /training-center
func (h *TrainingCenterHandler) CreateTrainingCenter(c *fiber.Ctx) error {
	// Parse request body
	var req model.CreateTrainingCenterRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	// Validate request, first failure wins
	if err := h.validator.ValidateCreate(&req); err != nil {
		return response.BadRequest(c, err.Error())
	}

	// Check if a center with this code already exists. The lookup and the
	// insert are separate store calls; a concurrent create racing between
	// them is caught by the unique index and reported as a store error.
	existing, err := h.store.FindCenterByCode(*req.CenterCode)
	if err != nil {
		return response.DatabaseError(c, err)
	}
	if existing != nil {
		return response.BadRequest(c, "A training center with this CenterCode already exists")
	}

	// Build and persist the record; the store assigns id and created_on
	center := model.FromCreateRequest(&req)
	if err := h.store.CreateCenter(&center); err != nil {
		return response.DatabaseError(c, err)
	}

	return response.Created(c, center.ToResponse())
}

// ListTrainingCenters handles GET /training-centers
func (h *TrainingCenterHandler) ListTrainingCenters(c *fiber.Ctx) error {
	filters := database.ListFilters{
		City:    c.Query("city"),
		State:   c.Query("state"),
		Pincode: c.Query("pincode"),
	}

	centers, err := h.store.ListCenters(filters)
	if err != nil {
		return response.DatabaseError(c, err)
	}

	results := make([]model.TrainingCenterResponse, 0, len(centers))
	for _, center := range centers {
		results = append(results, center.ToResponse())
	}

	return response.OK(c, results)
}
