package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shenikar/outage_tracker/internal/authz"
	"github.com/shenikar/outage_tracker/internal/errs"
	"github.com/shenikar/outage_tracker/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	locationService service.LocationService
	authService     service.AuthService
	logger          *logrus.Logger
	validate        *validator.Validate
}

func NewHandler(locationService service.LocationService, authService service.AuthService, logger *logrus.Logger) *Handler {
	return &Handler{
		locationService: locationService,
		authService:     authService,
		logger:          logger,
		validate:        validator.New(),
	}
}

// respondError переводит доменные ошибки в HTTP-ответы. Ошибки полей
// возвращаются картой под ключом errors, отказ переходов - под ключом status.
func (h *Handler) respondError(c *gin.Context, log *logrus.Entry, err error) {
	var ve authz.ValidationErrors
	var te *authz.TransitionError

	switch {
	case errors.As(err, &ve):
		log.WithField("fields", ve).Warn("Request failed field validation")
		c.JSON(http.StatusBadRequest, gin.H{"errors": ve})
	case errors.As(err, &te):
		log.WithError(te).Warn("Status transition rejected")
		c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"status": te.Reason}})
	case errors.Is(err, errs.ErrLocationNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "location not found"})
	case errors.Is(err, errs.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
	case errors.Is(err, errs.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	default:
		log.WithError(err).Error("Unhandled service error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// @Summary Report a new outage
// @Description Report a new power outage location. Only reporters may create; the location starts in the reported status.
// @Tags Locations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param location body CreateLocationRequest true "Outage report"
// @Success 201 {object} LocationResponse
// @Failure 400 {object} map[string]map[string]string "Validation errors"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /locations [post]
func (h *Handler) createLocation(c *gin.Context) {
	var input CreateLocationRequest
	log := h.logger.WithField("method", "createLocation")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	model := DTOToLocationModel(input)
	if err := h.locationService.CreateLocation(c.Request.Context(), currentUser(c), model); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToLocationResponse(model))
}

// @Summary Get a list of outages
// @Description Get a paginated list of outages visible to the caller's role.
// @Tags Locations
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(20)
// @Success 200 {array} LocationResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /locations [get]
func (h *Handler) listLocations(c *gin.Context) {
	log := h.logger.WithField("method", "listLocations")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))

	locations, err := h.locationService.ListLocations(c.Request.Context(), currentUser(c), page, pageSize)
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, ModelsToLocationResponses(locations))
}

// @Summary Get outage by ID
// @Description Get a single outage by its ID. Locations outside the caller's visibility return 404.
// @Tags Locations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Location ID"
// @Success 200 {object} LocationResponse
// @Failure 400 {object} map[string]string "Invalid location ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Location not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /locations/{id} [get]
func (h *Handler) getLocation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid location ID"})
		return
	}
	log := h.logger.WithField("method", "getLocation").WithField("id", id)

	loc, err := h.locationService.GetLocation(c.Request.Context(), currentUser(c), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToLocationResponse(loc))
}

// @Summary Update an outage
// @Description Partially update an outage. Fields outside the caller's permissions are silently dropped; each accepted change appends a history record.
// @Tags Locations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Location ID"
// @Param location body UpdateLocationRequest true "Partial update request"
// @Success 200 {object} UpdateLocationResponse
// @Failure 400 {object} map[string]map[string]string "Validation errors or rejected transition"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Location not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /locations/{id} [patch]
func (h *Handler) updateLocation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid location ID"})
		return
	}
	log := h.logger.WithField("method", "updateLocation").WithField("id", id)

	var input UpdateLocationRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	loc, emitted, err := h.locationService.UpdateLocation(c.Request.Context(), currentUser(c), id, DTOToLocationChanges(input))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, UpdateLocationResponse{
		Location: ModelToLocationResponse(loc),
		Updates:  ModelsToUpdateResponses(emitted),
	})
}

// @Summary Get outage history
// @Description Get the append-only history of an outage, newest first.
// @Tags Locations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Location ID"
// @Success 200 {array} UpdateResponse
// @Failure 400 {object} map[string]string "Invalid location ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Location not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /locations/{id}/updates [get]
func (h *Handler) listUpdates(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid location ID"})
		return
	}
	log := h.logger.WithField("method", "listUpdates").WithField("id", id)

	updates, err := h.locationService.ListUpdates(c.Request.Context(), currentUser(c), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToUpdateResponses(updates))
}

// @Summary Add a note to an outage
// @Description Append a free-form note to the outage history.
// @Tags Locations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Location ID"
// @Param note body NoteRequest true "Note request"
// @Success 201 {object} UpdateResponse
// @Failure 400 {object} map[string]map[string]string "Validation errors"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Location not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /locations/{id}/updates [post]
func (h *Handler) addNote(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid location ID"})
		return
	}
	log := h.logger.WithField("method", "addNote").WithField("id", id)

	var input NoteRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	upd, err := h.locationService.AddNote(c.Request.Context(), currentUser(c), id, input.Notes)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToUpdateResponse(upd))
}

// @Summary Get outage statistics
// @Description Get outage counts by status and priority within the caller's visibility.
// @Tags Locations
// @Produce json
// @Security BearerAuth
// @Success 200 {object} StatsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /locations/stats [get]
func (h *Handler) getStats(c *gin.Context) {
	log := h.logger.WithField("method", "getStats")

	stats, err := h.locationService.GetStats(c.Request.Context(), currentUser(c))
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, StatsToResponse(stats))
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
