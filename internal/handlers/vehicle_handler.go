package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/fleet-manager/internal/dto"
	"github.com/BruksfildServices01/fleet-manager/internal/httperr"
	"github.com/BruksfildServices01/fleet-manager/internal/middleware"
	ucVehicle "github.com/BruksfildServices01/fleet-manager/internal/usecase/vehicle"
)

type VehicleHandler struct {
	create    *ucVehicle.Create
	get       *ucVehicle.Get
	list      *ucVehicle.List
	update    *ucVehicle.Update
	remove    *ucVehicle.Delete
	setStatus *ucVehicle.SetStatus
	log       *logrus.Logger
}

func NewVehicleHandler(
	create *ucVehicle.Create,
	get *ucVehicle.Get,
	list *ucVehicle.List,
	update *ucVehicle.Update,
	remove *ucVehicle.Delete,
	setStatus *ucVehicle.SetStatus,
	log *logrus.Logger,
) *VehicleHandler {
	return &VehicleHandler{
		create:    create,
		get:       get,
		list:      list,
		update:    update,
		remove:    remove,
		setStatus: setStatus,
		log:       log,
	}
}

// --------- Requests ---------

type CreateVehicleRequest struct {
	Name   string `json:"name"`
	Plate  string `json:"plate"`
	Status string `json:"status"`
}

type UpdateVehicleRequest struct {
	Name   *string `json:"name,omitempty"`
	Plate  *string `json:"plate,omitempty"`
	Status *string `json:"status,omitempty"`
}

type SetStatusRequest struct {
	Status string `json:"status"`
}

// --------- Helpers ---------

func parseVehicleID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.Write(c, http.StatusBadRequest, "Invalid vehicle ID")
		return 0, false
	}
	return uint(id), true
}

// --------- Handlers ---------

func (h *VehicleHandler) List(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextUserID).(uint)

	vehicles, err := h.list.Execute(c.Request.Context(), ownerID, c.Query("status"))
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	out := dto.NewVehicleList(vehicles)
	c.JSON(http.StatusOK, gin.H{
		"vehicles": out,
		"count":    len(out),
	})
}

func (h *VehicleHandler) Create(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Write(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	created, err := h.create.Execute(c.Request.Context(), ownerID, ucVehicle.CreateInput{
		Name:   req.Name,
		Plate:  req.Plate,
		Status: req.Status,
	})
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Vehicle created successfully",
		"vehicle": dto.NewVehicleDTO(created),
	})
}

func (h *VehicleHandler) Get(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := parseVehicleID(c)
	if !ok {
		return
	}

	v, err := h.get.Execute(c.Request.Context(), ownerID, id)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"vehicle": dto.NewVehicleDTO(v)})
}

func (h *VehicleHandler) Update(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := parseVehicleID(c)
	if !ok {
		return
	}

	var req UpdateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Write(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	updated, err := h.update.Execute(c.Request.Context(), ownerID, id, ucVehicle.UpdateInput{
		Name:   req.Name,
		Plate:  req.Plate,
		Status: req.Status,
	})
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Vehicle updated successfully",
		"vehicle": dto.NewVehicleDTO(updated),
	})
}

func (h *VehicleHandler) Delete(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := parseVehicleID(c)
	if !ok {
		return
	}

	if err := h.remove.Execute(c.Request.Context(), ownerID, id); err != nil {
		writeError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Vehicle deleted successfully"})
}

func (h *VehicleHandler) SetStatus(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := parseVehicleID(c)
	if !ok {
		return
	}

	var req SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Write(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	updated, err := h.setStatus.Execute(c.Request.Context(), ownerID, id, req.Status)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	message := "Vehicle activated successfully"
	if updated.Status == "inactive" {
		message = "Vehicle archived successfully"
	}

	c.JSON(http.StatusOK, gin.H{
		"message": message,
		"vehicle": dto.NewVehicleDTO(updated),
	})
}
