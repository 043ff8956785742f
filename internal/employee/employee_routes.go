package employee

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	employees := r.Group("/employees")
	{
		employees.GET("", handler.List)
		employees.POST("", handler.Create)
		employees.GET("/:id", handler.Show)
		employees.PUT("/:id", handler.Update)
		employees.PATCH("/:id", handler.Update)
		employees.DELETE("/:id", handler.Delete)

		employees.POST("/:id/photo", handler.UploadPhoto)
		employees.DELETE("/:id/photo", handler.DeletePhoto)
	}
}
