package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yigit/unicommunity/internal/app/models"
	"github.com/yigit/unicommunity/internal/app/models/dto"
	"github.com/yigit/unicommunity/internal/middleware"
	"github.com/yigit/unicommunity/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
	middleware.RegisterJSONFieldNames()
}

type fakeRegistrar struct {
	got  *dto.RegisterRequest
	resp *dto.RegisterResponse
	err  error
}

func (f *fakeRegistrar) Register(_ context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	f.got = req
	return f.resp, f.err
}

type fakeChats struct {
	chat         *models.Chat
	participants []string
	chats        []*models.Chat
	messages     []*models.Message
	added        bool
	err          error
	studentID    int64
	chatID       int64
}

func (f *fakeChats) CreateChat(_ context.Context, participants []string, universityName string) (*models.Chat, error) {
	f.participants = participants
	if f.err != nil {
		return nil, f.err
	}
	return &models.Chat{ID: 42, Participants: participants}, nil
}

func (f *fakeChats) GetChat(_ context.Context, chatID int64) (*models.Chat, error) {
	f.chatID = chatID
	return f.chat, f.err
}

func (f *fakeChats) AddMember(_ context.Context, chatID, studentID int64) (bool, error) {
	f.chatID, f.studentID = chatID, studentID
	return f.added, f.err
}

func (f *fakeChats) ListStudentChats(_ context.Context, studentID int64) ([]*models.Chat, error) {
	f.studentID = studentID
	return f.chats, f.err
}

func (f *fakeChats) PostMessage(_ context.Context, chatID int64, kind string, senderID int64, content string) (*models.Message, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.Message{ID: 1, ChatID: chatID, Sender: models.Sender{Kind: models.SenderKind(kind), ID: senderID}, Content: content, CreatedAt: time.Now()}, nil
}

func (f *fakeChats) ListMessages(_ context.Context, chatID int64) ([]*models.Message, error) {
	return f.messages, f.err
}

type fakeEnroller struct {
	courses []*models.Course
	err     error
}

func (f *fakeEnroller) Enroll(_ context.Context, studentID, courseID int64) (*models.Enrollment, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.Enrollment{ID: 9, StudentID: studentID, CourseID: courseID}, nil
}

func (f *fakeEnroller) ListStudentCourses(_ context.Context, _ int64) ([]*models.Course, error) {
	return f.courses, f.err
}

type fakeRecorder struct{ err error }

func (f *fakeRecorder) CreateReview(_ context.Context, _ string, content string) (*models.Review, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.Review{ID: 5, Content: content}, nil
}

func (f *fakeRecorder) CreateContact(_ context.Context, _ string, contact *models.Contact) (*models.Contact, error) {
	if f.err != nil {
		return nil, f.err
	}
	contact.ID = 6
	return contact, nil
}

type fakePinger struct{ err error }

func (f fakePinger) Ping(context.Context) error { return f.err }

func perform(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			if err := json.NewEncoder(&buf).Encode(b); err != nil {
				t.Fatal(err)
			}
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
}

func TestRegister(t *testing.T) {
	phone := "555"
	tests := []struct {
		name   string
		body   interface{}
		resp   *dto.RegisterResponse
		err    error
		status int
		code   dto.ErrorCode
	}{
		{
			name:   "student",
			body:   map[string]string{"user_type": "student", "username": "Jane Doe"},
			resp:   &dto.RegisterResponse{Message: "Student registration successful", User: &dto.UserResponse{ID: 1, Username: "janedoe", PhoneNumber: &phone, EnrollmentDate: "2024-09-01"}},
			status: http.StatusCreated,
		},
		{name: "malformed json", body: `{"user_type":`, status: http.StatusBadRequest, code: dto.ErrorCodeValidationFailed},
		{name: "duplicate", body: map[string]string{"user_type": "student"}, err: apperrors.NewCustomError(apperrors.ErrDuplicateUsername, "Username already exists"), status: http.StatusBadRequest, code: dto.ErrorCodeDuplicateUsername},
		{name: "invalid type", body: map[string]string{"user_type": "x"}, err: apperrors.ErrInvalidUserType, status: http.StatusBadRequest, code: dto.ErrorCodeInvalidUserType},
		{name: "missing parent", body: map[string]string{"user_type": "course"}, err: apperrors.NewNotFoundError("Department not found"), status: http.StatusNotFound, code: dto.ErrorCodeResourceNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registrar := &fakeRegistrar{resp: tt.resp, err: tt.err}
			router := gin.New()
			router.POST("/register", NewRegistrationController(registrar).Register)

			w := perform(t, router, http.MethodPost, "/register", tt.body)
			if w.Code != tt.status {
				t.Fatalf("status = %d, want %d (%s)", w.Code, tt.status, w.Body.String())
			}

			if tt.status == http.StatusCreated {
				var got dto.RegisterResponse
				decode(t, w, &got)
				if got.User == nil || got.User.Username != "janedoe" || got.User.EnrollmentDate != "2024-09-01" {
					t.Errorf("body = %s", w.Body.String())
				}
				if registrar.got.Username != "Jane Doe" {
					t.Errorf("request not forwarded: %+v", registrar.got)
				}
				return
			}

			var got dto.ErrorResponse
			decode(t, w, &got)
			if got.Code != tt.code || got.Error == "" {
				t.Errorf("error body = %+v", got)
			}
		})
	}
}

func chatRouter(chats ChatManager) *gin.Engine {
	ctrl := NewChatController(chats)
	router := gin.New()
	router.POST("/create_chat", ctrl.CreateChat)
	router.GET("/user/:student_id/chats", ctrl.GetUserChats)
	router.GET("/chats/:chat_id", ctrl.GetChat)
	router.POST("/chats/:chat_id/members", ctrl.AddMember)
	router.POST("/chats/:chat_id/messages", ctrl.PostMessage)
	router.GET("/chats/:chat_id/messages", ctrl.ListMessages)
	return router
}

func TestCreateChat(t *testing.T) {
	w := perform(t, chatRouter(&fakeChats{}), http.MethodPost, "/create_chat",
		map[string]interface{}{"participants": []string{"a", "b"}, "university_name": "Bogazici"})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d (%s)", w.Code, w.Body.String())
	}
	var got dto.CreateChatResponse
	decode(t, w, &got)
	if got.ChatID != 42 || got.Message != "Chat created successfully" {
		t.Errorf("body = %+v", got)
	}

	w = perform(t, chatRouter(&fakeChats{err: apperrors.NewNotFoundError("University not found")}), http.MethodPost, "/create_chat",
		map[string]interface{}{"participants": []string{"a"}, "university_name": "Nowhere"})
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown university: status = %d", w.Code)
	}
}

func TestCreateChatAcceptsNumericParticipants(t *testing.T) {
	chats := &fakeChats{}
	w := perform(t, chatRouter(chats), http.MethodPost, "/create_chat",
		`{"participants":[1,2,"Jane Doe"],"university_name":"Bogazici"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d (%s)", w.Code, w.Body.String())
	}
	if want := []string{"1", "2", "Jane Doe"}; !reflect.DeepEqual(chats.participants, want) {
		t.Errorf("participants = %#v, want %#v", chats.participants, want)
	}

	w = perform(t, chatRouter(&fakeChats{}), http.MethodPost, "/create_chat",
		`{"participants":[{"id":1}],"university_name":"Bogazici"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("object participant: status = %d", w.Code)
	}
}

func TestRegisterAcceptsNumericPhoneNumber(t *testing.T) {
	registrar := &fakeRegistrar{resp: &dto.RegisterResponse{Message: "Professor registration successful"}}
	router := gin.New()
	router.POST("/register", NewRegistrationController(registrar).Register)

	w := perform(t, router, http.MethodPost, "/register",
		`{"user_type":"professor","full_name":"Ada L","username":"ada","phone_number":5550100,"password":"pw"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d (%s)", w.Code, w.Body.String())
	}
	if registrar.got.PhoneNumber != "5550100" {
		t.Errorf("phone_number = %q", registrar.got.PhoneNumber)
	}
}

func TestGetUserChats(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		chats  *fakeChats
		status int
		want   string
	}{
		{name: "empty", path: "/user/3/chats", chats: &fakeChats{chats: []*models.Chat{}}, status: 200, want: `{"chats":[]}`},
		{name: "ordered", path: "/user/3/chats", chats: &fakeChats{chats: []*models.Chat{
			{ID: 7, Participants: []string{"x"}},
			{ID: 2, Participants: []string{}},
		}}, status: 200, want: `{"chats":[{"chat_id":7,"participants":["x"]},{"chat_id":2,"participants":[]}]}`},
		{name: "unknown student", path: "/user/99/chats", chats: &fakeChats{err: apperrors.NewNotFoundError("Student not found")}, status: 404},
		{name: "bad id", path: "/user/abc/chats", chats: &fakeChats{}, status: 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := perform(t, chatRouter(tt.chats), http.MethodGet, tt.path, nil)
			if w.Code != tt.status {
				t.Fatalf("status = %d, want %d", w.Code, tt.status)
			}
			if tt.want != "" && w.Body.String() != tt.want {
				t.Errorf("body = %s, want %s", w.Body.String(), tt.want)
			}
		})
	}
}

func TestGetChat(t *testing.T) {
	chats := &fakeChats{chat: &models.Chat{ID: 4, UniversityID: 1, Participants: []string{"a", "b"}}}
	w := perform(t, chatRouter(chats), http.MethodGet, "/chats/4", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var got dto.ChatResponse
	decode(t, w, &got)
	if got.Chat == nil || len(got.Chat.Participants) != 2 || chats.chatID != 4 {
		t.Errorf("body = %s", w.Body.String())
	}
}

func TestAddMember(t *testing.T) {
	tests := []struct {
		name   string
		chats  *fakeChats
		body   interface{}
		status int
	}{
		{name: "added", chats: &fakeChats{added: true}, body: map[string]int64{"student_id": 3}, status: 201},
		{name: "already member", chats: &fakeChats{}, body: map[string]int64{"student_id": 3}, status: 200},
		{name: "missing student id", chats: &fakeChats{}, body: map[string]int64{}, status: 400},
		{name: "not found", chats: &fakeChats{err: apperrors.NewNotFoundError("Chat not found")}, body: map[string]int64{"student_id": 3}, status: 404},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := perform(t, chatRouter(tt.chats), http.MethodPost, "/chats/4/members", tt.body)
			if w.Code != tt.status {
				t.Errorf("status = %d, want %d (%s)", w.Code, tt.status, w.Body.String())
			}
		})
	}
}

func TestMessages(t *testing.T) {
	chats := &fakeChats{messages: []*models.Message{
		{ID: 1, ChatID: 4, Sender: models.Sender{Kind: models.SenderStudent, ID: 3}, Content: "hi"},
	}}
	router := chatRouter(chats)

	w := perform(t, router, http.MethodPost, "/chats/4/messages",
		map[string]interface{}{"sender_kind": "professor", "sender_id": 2, "content": "hello"})
	if w.Code != http.StatusCreated {
		t.Fatalf("post status = %d (%s)", w.Code, w.Body.String())
	}
	var posted dto.PostMessageResponse
	decode(t, w, &posted)
	if posted.Data.Sender.Kind != models.SenderProfessor || posted.Data.Sender.ID != 2 || posted.Data.ChatID != 4 {
		t.Errorf("posted = %+v", posted)
	}

	w = perform(t, router, http.MethodPost, "/chats/4/messages", map[string]interface{}{"sender_id": 2})
	if w.Code != http.StatusBadRequest {
		t.Errorf("incomplete message: status = %d", w.Code)
	}

	w = perform(t, router, http.MethodGet, "/chats/4/messages", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list status = %d", w.Code)
	}
	var list dto.MessageListResponse
	decode(t, w, &list)
	if len(list.Messages) != 1 || list.Messages[0].Content != "hi" {
		t.Errorf("list = %+v", list)
	}
}

func TestEnrollment(t *testing.T) {
	ctrl := NewEnrollmentController(&fakeEnroller{courses: []*models.Course{{ID: 1, Name: "Algorithms"}}})
	router := gin.New()
	router.POST("/enrollments", ctrl.Enroll)
	router.GET("/students/:student_id/courses", ctrl.GetStudentCourses)

	w := perform(t, router, http.MethodPost, "/enrollments", map[string]int64{"student_id": 1, "course_id": 2})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d (%s)", w.Code, w.Body.String())
	}
	var enrolled dto.EnrollResponse
	decode(t, w, &enrolled)
	if enrolled.EnrollmentID != 9 {
		t.Errorf("body = %+v", enrolled)
	}

	w = perform(t, router, http.MethodGet, "/students/1/courses", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var courses dto.StudentCoursesResponse
	decode(t, w, &courses)
	if len(courses.Courses) != 1 || courses.Courses[0].Name != "Algorithms" {
		t.Errorf("courses = %+v", courses)
	}
}

func TestUniversityRecords(t *testing.T) {
	ctrl := NewUniversityRecordController(&fakeRecorder{})
	router := gin.New()
	router.POST("/reviews", ctrl.CreateReview)
	router.POST("/contacts", ctrl.CreateContact)

	w := perform(t, router, http.MethodPost, "/reviews", map[string]string{"university_name": "Bogazici", "content": "nice"})
	if w.Code != http.StatusCreated {
		t.Errorf("review status = %d (%s)", w.Code, w.Body.String())
	}

	contact := map[string]string{"university_name": "Bogazici", "name": "Registrar", "email": "not-an-email", "phone_number": "1"}
	w = perform(t, router, http.MethodPost, "/contacts", contact)
	if w.Code != http.StatusBadRequest {
		t.Errorf("bad email: status = %d", w.Code)
	}

	contact["email"] = "registrar@example.edu"
	w = perform(t, router, http.MethodPost, "/contacts", contact)
	if w.Code != http.StatusCreated {
		t.Errorf("contact status = %d (%s)", w.Code, w.Body.String())
	}
}

func TestHealth(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{name: "up", status: http.StatusOK},
		{name: "down", err: context.DeadlineExceeded, status: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := NewHealthController(fakePinger{err: tt.err})
			router := gin.New()
			router.GET("/health", ctrl.Health)
			router.GET("/ping", ctrl.Ping)

			if w := perform(t, router, http.MethodGet, "/health", nil); w.Code != tt.status {
				t.Errorf("health status = %d, want %d", w.Code, tt.status)
			}
			if w := perform(t, router, http.MethodGet, "/ping", nil); w.Code != http.StatusOK {
				t.Errorf("ping status = %d", w.Code)
			}
		})
	}
}
