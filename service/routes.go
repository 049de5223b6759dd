package service

import (
	"github.com/gin-gonic/gin"
)

func (s *Server) SetupRoutes() *gin.Engine {
	routes := gin.New()
	routes.Use(gin.Recovery(), s.RequestID, s.RequestLogger)

	routes.GET("/activity/:username", s.Activity)

	cachedRoutes := routes.Group("/")
	{
		cachedRoutes.Use(s.CacheUserRequest)

		cachedRoutes.GET("/books", s.ListBooks)
		cachedRoutes.PUT("/books/:book", s.CreateBook)
		cachedRoutes.GET("/books/:book/contacts", s.ListContacts)
		cachedRoutes.PUT("/books/:book/contacts", s.CreateContact)
		cachedRoutes.GET("/books/:book/contacts/:first/:last", s.GetContact)
		cachedRoutes.POST("/books/:book/contacts/:first/:last", s.UpdateContact)
		cachedRoutes.DELETE("/books/:book/contacts/:first/:last", s.DeleteContact)
		cachedRoutes.GET("/books/:book/export", s.ExportContacts)
		cachedRoutes.POST("/books/:book/import", s.ImportContacts)
		cachedRoutes.GET("/search", s.SearchContacts)
		cachedRoutes.GET("/store", s.Store)
	}

	return routes
}
