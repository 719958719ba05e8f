package task

import (
	"net/http"

	"taskmanager/dto"
	"taskmanager/model"

	"github.com/gin-gonic/gin"
)

// TaskController registers the task list's operations against the view model.
func TaskController(router *gin.Engine, vm *ViewModel) {
	router.POST("/task", func(c *gin.Context) {
		var request dto.CreateTaskRequest
		if err := c.ShouldBindJSON(&request); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
			return
		}
		vm.AddTask(c.Request.Context(), request.Name, model.Status(request.Status))
		c.JSON(http.StatusOK, gin.H{"form": vm.FormView(), "rows": vm.Table()})
	})

	router.DELETE("/task/:id", func(c *gin.Context) {
		vm.DeleteTask(c.Request.Context(), c.Param("id"))
		c.JSON(http.StatusOK, gin.H{"rows": vm.Table()})
	})

	router.PUT("/task/:id/status", func(c *gin.Context) {
		var request dto.ChangeStatusRequest
		if err := c.ShouldBindJSON(&request); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
			return
		}
		cached, ok := vm.Task(c.Param("id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
			return
		}
		vm.ChangeStatus(c.Request.Context(), cached, model.Status(request.Status))
		c.JSON(http.StatusOK, gin.H{"rows": vm.Table()})
	})

	router.PUT("/search", func(c *gin.Context) {
		var request dto.SearchRequest
		if err := c.ShouldBindJSON(&request); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
			return
		}
		vm.SetSearchTerm(request.Term)
		c.JSON(http.StatusOK, gin.H{"rows": vm.Table()})
	})
}
