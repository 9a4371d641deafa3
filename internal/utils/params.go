package utils

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

func GetProjectID(ctx *gin.Context) (uint, error) {
	projectIDStr := ctx.Param("project_id")

	if projectIDStr == "" {
		return 0, errors.New("Project ID not found")
	}

	projectID, err := strconv.ParseUint(projectIDStr, 10, 32)

	if err != nil {
		return 0, errors.New("Invalid Project ID")
	}

	return uint(projectID), nil
}

func GetTaskID(ctx *gin.Context) (uint, error) {
	taskIDStr := ctx.Param("id")

	if taskIDStr == "" {
		return 0, errors.New("Task ID not found")
	}

	taskID, err := strconv.ParseUint(taskIDStr, 10, 32)

	if err != nil {
		return 0, errors.New("Invalid Task ID")
	}

	return uint(taskID), nil
}

// GetRequestingUserID reads the userId query parameter that scopes
// owner-authorized operations.
func GetRequestingUserID(ctx *gin.Context) (uint, error) {
	userIDStr := ctx.Query("userId")

	if userIDStr == "" {
		return 0, errors.New("User ID not found")
	}

	userID, err := strconv.ParseUint(userIDStr, 10, 32)

	if err != nil {
		return 0, errors.New("Invalid User ID")
	}

	return uint(userID), nil
}
