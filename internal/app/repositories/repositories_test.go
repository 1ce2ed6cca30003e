package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/yigit/unicommunity/internal/app/models"
	"github.com/yigit/unicommunity/internal/app/models/dto"
	"github.com/yigit/unicommunity/internal/middleware"
	"github.com/yigit/unicommunity/internal/pkg/apperrors"
)

func TestUniversityRepositoryCreate(t *testing.T) {
	created := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	q := &fakeQuerier{rows: []fakeRow{{values: []any{int64(7), created}}}}
	repo := NewUniversityRepository(q)

	u := &models.University{Name: "Bogazici"}
	id, err := repo.Create(context.Background(), u)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if id != 7 || u.ID != 7 || !u.CreatedAt.Equal(created) {
		t.Errorf("got id=%d university=%+v", id, u)
	}

	got := q.last()
	if got.sql != "INSERT INTO universities (name) VALUES ($1) RETURNING id, created_at" {
		t.Errorf("unexpected sql %q", got.sql)
	}
	if !reflect.DeepEqual(got.args, []any{"Bogazici"}) {
		t.Errorf("unexpected args %v", got.args)
	}
}

func TestCreateTranslatesConstraintViolations(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "unique", err: &pgconn.PgError{Code: "23505", ConstraintName: "universities_name_key"}, want: ErrDuplicate},
		{name: "foreign key", err: &pgconn.PgError{Code: "23503"}, want: ErrMissingParent},
		{name: "value too long", err: &pgconn.PgError{Code: "22001"}, want: ErrValueTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := &fakeQuerier{rows: []fakeRow{{err: tt.err}}}
			_, err := NewUniversityRepository(q).Create(context.Background(), &models.University{Name: "x"})
			if !errors.Is(err, tt.want) {
				t.Errorf("got %v, want %v", err, tt.want)
			}
		})
	}
}

func TestValueTooLongIsAValidationError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	phone := "+90 555 000 0000 0000 0"
	q := &fakeQuerier{rows: []fakeRow{{err: &pgconn.PgError{Code: "22001", Message: "value too long for type character varying(20)"}}}}

	_, err := NewStudentRepository(q).Create(context.Background(), &models.Student{
		FullName: "Jane Doe", Username: "janedoe", PasswordHash: "h", PhoneNumber: &phone,
	})
	if !errors.Is(err, ErrValueTooLong) || !apperrors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("got %v, want a validation error", err)
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/register", nil)
	middleware.HandleAPIError(c, err)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d (%s)", w.Code, w.Body.String())
	}
	var body dto.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.Code != dto.ErrorCodeValidationFailed || body.Error != "Value exceeds the maximum allowed length" {
		t.Errorf("body = %+v", body)
	}
}

func TestGetByNameNotFound(t *testing.T) {
	q := &fakeQuerier{}
	_, err := NewUniversityRepository(q).GetByName(context.Background(), "nowhere")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
	if !strings.Contains(q.last().sql, "WHERE name = $1") {
		t.Errorf("lookup must be by exact name, sql %q", q.last().sql)
	}
}

func TestExistsQuery(t *testing.T) {
	q := &fakeQuerier{rows: []fakeRow{{values: []any{true}}}}
	found, err := NewStudentRepository(q).ExistsByUsername(context.Background(), "janedoe")
	if err != nil {
		t.Fatalf("ExistsByUsername: %v", err)
	}
	if !found {
		t.Error("expected the username to exist")
	}

	got := q.last()
	if !strings.HasPrefix(got.sql, "SELECT EXISTS (") || !strings.Contains(got.sql, "FROM students WHERE username = $1") {
		t.Errorf("unexpected sql %q", got.sql)
	}
}

func TestStudentRepositoryGetByID(t *testing.T) {
	phone := "555"
	enrolled := time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC)
	q := &fakeQuerier{rows: []fakeRow{{values: []any{int64(3), "Jane Doe", "janedoe", "hash", &phone, enrolled}}}}

	s, err := NewStudentRepository(q).GetByID(context.Background(), 3)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if s.Username != "janedoe" || s.PhoneNumber == nil || *s.PhoneNumber != "555" || !s.EnrollmentDate.Equal(enrolled) {
		t.Errorf("unexpected student %+v", s)
	}
}

func TestFindIDsByUsernames(t *testing.T) {
	q := &fakeQuerier{sets: [][][]any{{
		{int64(1), "alice"},
		{int64(2), "bob"},
	}}}
	repo := NewStudentRepository(q)

	ids, err := repo.FindIDsByUsernames(context.Background(), []string{"alice", "bob", "carol"})
	if err != nil {
		t.Fatalf("FindIDsByUsernames: %v", err)
	}
	if !reflect.DeepEqual(ids, map[string]int64{"alice": 1, "bob": 2}) {
		t.Errorf("unexpected ids %v", ids)
	}
	if !strings.Contains(q.last().sql, "username IN ($1,$2,$3)") {
		t.Errorf("unexpected sql %q", q.last().sql)
	}

	calls := len(q.calls)
	ids, err = repo.FindIDsByUsernames(context.Background(), nil)
	if err != nil || len(ids) != 0 {
		t.Errorf("empty input: ids=%v err=%v", ids, err)
	}
	if len(q.calls) != calls {
		t.Error("empty input must not hit the database")
	}
}

func TestChatRepositoryCreateEncodesParticipants(t *testing.T) {
	q := &fakeQuerier{rows: []fakeRow{{values: []any{int64(11), time.Now()}}}}
	chat := &models.Chat{UniversityID: 2, Participants: []string{"a", "b"}}

	id, err := NewChatRepository(q).Create(context.Background(), chat)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if id != 11 {
		t.Errorf("id = %d, want 11", id)
	}

	got := q.last()
	if got.sql != "INSERT INTO chats (university_id,participants) VALUES ($1,$2) RETURNING id, created_at" {
		t.Errorf("unexpected sql %q", got.sql)
	}
	if raw, ok := got.args[1].([]byte); !ok || string(raw) != `["a","b"]` {
		t.Errorf("participants arg = %v", got.args[1])
	}
}

func TestChatRepositoryGetByIDDecodesParticipants(t *testing.T) {
	q := &fakeQuerier{rows: []fakeRow{{values: []any{int64(4), int64(2), []byte(`["a","b"]`), time.Now()}}}}

	chat, err := NewChatRepository(q).GetByID(context.Background(), 4)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if !reflect.DeepEqual(chat.Participants, []string{"a", "b"}) {
		t.Errorf("participants = %v", chat.Participants)
	}
}

func TestChatRepositoryGetByIDForUpdateLocksRow(t *testing.T) {
	row := fakeRow{values: []any{int64(4), int64(2), []byte(`["a"]`), time.Now()}}
	q := &fakeQuerier{rows: []fakeRow{row, row}}
	repo := NewChatRepository(q)

	if _, err := repo.GetByIDForUpdate(context.Background(), 4); err != nil {
		t.Fatalf("GetByIDForUpdate: %v", err)
	}
	if got := q.last().sql; got != "SELECT id, university_id, participants, created_at FROM chats WHERE id = $1 FOR UPDATE" {
		t.Errorf("unexpected sql %q", got)
	}

	if _, err := repo.GetByID(context.Background(), 4); err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if strings.Contains(q.last().sql, "FOR UPDATE") {
		t.Errorf("plain reads must not lock, sql %q", q.last().sql)
	}
}

func TestChatRepositoryListByStudentID(t *testing.T) {
	now := time.Now()
	q := &fakeQuerier{sets: [][][]any{{
		{int64(9), int64(1), []byte(`["x"]`), now},
		{int64(3), int64(1), []byte(`[]`), now},
	}}}

	chats, err := NewChatRepository(q).ListByStudentID(context.Background(), 5)
	if err != nil {
		t.Fatalf("ListByStudentID: %v", err)
	}
	if len(chats) != 2 || chats[0].ID != 9 || chats[1].ID != 3 {
		t.Fatalf("order not preserved: %+v", chats)
	}
	if chats[1].Participants == nil || len(chats[1].Participants) != 0 {
		t.Errorf("empty participants should decode to an empty list, got %#v", chats[1].Participants)
	}

	sql := q.last().sql
	if !strings.Contains(sql, "JOIN chats c ON c.id = sc.chat_id") || !strings.HasSuffix(sql, "ORDER BY sc.id ASC") {
		t.Errorf("unexpected sql %q", sql)
	}
}

func TestChatRepositoryListByStudentIDEmpty(t *testing.T) {
	chats, err := NewChatRepository(&fakeQuerier{}).ListByStudentID(context.Background(), 5)
	if err != nil {
		t.Fatalf("ListByStudentID: %v", err)
	}
	if chats == nil || len(chats) != 0 {
		t.Errorf("want an empty non-nil slice, got %#v", chats)
	}
}

func TestChatRepositoryUpdateParticipantsMissingChat(t *testing.T) {
	q := &fakeQuerier{tags: []pgconn.CommandTag{pgconn.NewCommandTag("UPDATE 0")}}
	err := NewChatRepository(q).UpdateParticipants(context.Background(), 99, []string{"a"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestMessageRepositoryListByChatID(t *testing.T) {
	now := time.Now()
	q := &fakeQuerier{sets: [][][]any{{
		{int64(1), int64(4), "student", int64(7), "hi", now},
		{int64(2), int64(4), "professor", int64(3), "hello", now},
	}}}

	messages, err := NewMessageRepository(q).ListByChatID(context.Background(), 4)
	if err != nil {
		t.Fatalf("ListByChatID: %v", err)
	}
	want := []models.Sender{{Kind: models.SenderStudent, ID: 7}, {Kind: models.SenderProfessor, ID: 3}}
	for i, m := range messages {
		if m.Sender != want[i] {
			t.Errorf("message %d sender = %+v, want %+v", i, m.Sender, want[i])
		}
	}
}

func TestCourseRepositoryCreateLeavesOptionalFieldsNull(t *testing.T) {
	q := &fakeQuerier{rows: []fakeRow{{values: []any{int64(5)}}}}
	course := &models.Course{Name: "Algorithms", DepartmentID: 2}

	if _, err := NewCourseRepository(q).Create(context.Background(), course); err != nil {
		t.Fatalf("Create: %v", err)
	}
	args := q.last().args
	if args[2] != (*int64)(nil) || args[3] != (*string)(nil) {
		t.Errorf("professor_id and schedule should be NULL, got %v %v", args[2], args[3])
	}
}
