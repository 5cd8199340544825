package handlers

import (
	"net/http"

	"mediconnect/models"
	"mediconnect/services/scheduling"
	userSvc "mediconnect/services/user"

	"github.com/gin-gonic/gin"
)

// doctorView is the doctor listing shape: the public profile plus, when a
// date was requested, the slots still open on that date.
type doctorView struct {
	models.User
	OpenSlots []string `json:"openSlots,omitempty"`
}

// ListDoctorsHandler returns doctors filtered by specialization, location and
// optionally by having a given slot free. Query parameters: specialization,
// location, date (YYYY-MM-DD), time (HH:MM; requires date).
func ListDoctorsHandler(svc userSvc.UserService, engine scheduling.SchedulingEngine) gin.HandlerFunc {
	return func(c *gin.Context) {
		specialization := c.Query("specialization")
		location := c.Query("location")
		date := c.Query("date")
		timeOfDay := c.Query("time")

		if timeOfDay != "" && date == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "the time filter requires a date"})
			return
		}

		doctors, err := svc.ListDoctors(specialization, location)
		if err != nil {
			respondError(c, http.StatusInternalServerError, err)
			return
		}

		views := make([]doctorView, 0, len(doctors))
		for i := range doctors {
			doc := &doctors[i]
			view := doctorView{User: *doc}

			if date != "" {
				open, err := engine.ListOpenSlots(doc, date)
				if err != nil {
					respondError(c, schedulingErrorStatus(err), err)
					return
				}
				if timeOfDay != "" && !containsSlot(open, timeOfDay) {
					continue
				}
				view.OpenSlots = open
			}
			views = append(views, view)
		}

		c.JSON(http.StatusOK, views)
	}
}

// GetDoctorHandler returns one doctor's public profile.
func GetDoctorHandler(svc userSvc.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		u, err := svc.GetUser(c.Param("id"))
		if err != nil {
			respondError(c, userErrorStatus(err), err)
			return
		}
		if !u.IsDoctor() {
			c.JSON(http.StatusNotFound, gin.H{"error": "doctor not found"})
			return
		}
		c.JSON(http.StatusOK, u)
	}
}

// GetDoctorSlotsHandler returns the open slots for a doctor on a date.
// An empty list means the doctor has nothing free, including days the doctor
// does not consult at all.
func GetDoctorSlotsHandler(svc userSvc.UserService, engine scheduling.SchedulingEngine) gin.HandlerFunc {
	return func(c *gin.Context) {
		date := c.Query("date")
		if date == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "the date query parameter is required"})
			return
		}

		u, err := svc.GetUser(c.Param("id"))
		if err != nil {
			respondError(c, userErrorStatus(err), err)
			return
		}
		if !u.IsDoctor() {
			c.JSON(http.StatusNotFound, gin.H{"error": "doctor not found"})
			return
		}

		open, err := engine.ListOpenSlots(u, date)
		if err != nil {
			respondError(c, schedulingErrorStatus(err), err)
			return
		}
		if open == nil {
			open = []string{}
		}
		c.JSON(http.StatusOK, gin.H{"doctorId": u.ID, "date": date, "openSlots": open})
	}
}

func containsSlot(slots []string, want string) bool {
	for _, s := range slots {
		if s == want {
			return true
		}
	}
	return false
}
