package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/unicommunity/internal/app/controllers"
)

// Controllers groups every controller mounted by SetupRouter
type Controllers struct {
	Registration     *controllers.RegistrationController
	Chat             *controllers.ChatController
	Enrollment       *controllers.EnrollmentController
	UniversityRecord *controllers.UniversityRecordController
	Health           *controllers.HealthController
}

// SetupRouter configures all application routes. Routes live at the root path.
func SetupRouter(router *gin.Engine, c Controllers) {
	router.POST("/register", c.Registration.Register)

	router.POST("/create_chat", c.Chat.CreateChat)
	router.GET("/user/:student_id/chats", c.Chat.GetUserChats)

	chats := router.Group("/chats")
	{
		chats.GET("/:chat_id", c.Chat.GetChat)
		chats.POST("/:chat_id/members", c.Chat.AddMember)
		chats.POST("/:chat_id/messages", c.Chat.PostMessage)
		chats.GET("/:chat_id/messages", c.Chat.ListMessages)
	}

	router.POST("/enrollments", c.Enrollment.Enroll)
	router.GET("/students/:student_id/courses", c.Enrollment.GetStudentCourses)

	router.POST("/reviews", c.UniversityRecord.CreateReview)
	router.POST("/contacts", c.UniversityRecord.CreateContact)

	if c.Health != nil {
		router.GET("/ping", c.Health.Ping)
		router.GET("/health", c.Health.Health)
	}
}
