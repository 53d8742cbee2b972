package usecase

import (
	"context"
	"encoding/json"
	"time"

	"career-connect/internal/domain/grading"
	"career-connect/internal/domain/interview"
	"career-connect/internal/domain/mentorship"
	"career-connect/internal/domain/user"
	"career-connect/internal/repository"

	"github.com/google/uuid"
)

type mockUserRepo struct {
	users       map[uuid.UUID]user.User
	mentors     []user.User
	connections map[uuid.UUID][]string
	err         error
}

func newMockUserRepo(users ...user.User) *mockUserRepo {
	m := &mockUserRepo{
		users:       make(map[uuid.UUID]user.User),
		connections: make(map[uuid.UUID][]string),
	}
	for _, u := range users {
		m.users[u.ID] = u
	}
	return m
}

func (m *mockUserRepo) Create(_ context.Context, u user.User) error {
	if m.err != nil {
		return m.err
	}
	m.users[u.ID] = u
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id uuid.UUID) (user.User, error) {
	if m.err != nil {
		return user.User{}, m.err
	}
	u, ok := m.users[id]
	if !ok {
		return user.User{}, repository.ErrUserNotFound
	}
	return u, nil
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, repository.ErrUserNotFound
}

func (m *mockUserRepo) Update(_ context.Context, u user.User) error {
	if _, ok := m.users[u.ID]; !ok {
		return repository.ErrUserNotFound
	}
	m.users[u.ID] = u
	return nil
}

func (m *mockUserRepo) List(context.Context, string, int) ([]user.User, error) { return nil, nil }

func (m *mockUserRepo) FindMentors(context.Context, repository.MentorFilter) ([]user.User, error) {
	return m.mentors, m.err
}

func (m *mockUserRepo) FindAvailableMentors(context.Context, uuid.UUID) ([]user.User, error) {
	return m.mentors, m.err
}

func (m *mockUserRepo) AddConnection(_ context.Context, userID, connectionID uuid.UUID) error {
	for _, existing := range m.connections[userID] {
		if existing == connectionID.String() {
			return nil
		}
	}
	m.connections[userID] = append(m.connections[userID], connectionID.String())
	return nil
}

func (m *mockUserRepo) SetTargetCompanies(context.Context, uuid.UUID, []string) error { return nil }

type mockRequestRepo struct {
	requests map[uuid.UUID]mentorship.Request
	err      error
}

func newMockRequestRepo(requests ...mentorship.Request) *mockRequestRepo {
	m := &mockRequestRepo{requests: make(map[uuid.UUID]mentorship.Request)}
	for _, r := range requests {
		m.requests[r.ID] = r
	}
	return m
}

func (m *mockRequestRepo) Create(_ context.Context, req mentorship.Request) error {
	if m.err != nil {
		return m.err
	}
	m.requests[req.ID] = req
	return nil
}

func (m *mockRequestRepo) GetByID(_ context.Context, id uuid.UUID) (mentorship.Request, error) {
	req, ok := m.requests[id]
	if !ok {
		return mentorship.Request{}, repository.ErrRequestNotFound
	}
	return req, nil
}

func (m *mockRequestRepo) UpdateStatus(_ context.Context, id uuid.UUID, status string) error {
	req, ok := m.requests[id]
	if !ok {
		return repository.ErrRequestNotFound
	}
	req.Status = status
	m.requests[id] = req
	return nil
}

func (m *mockRequestRepo) FindByUser(context.Context, uuid.UUID) ([]mentorship.Request, error) {
	out := make([]mentorship.Request, 0, len(m.requests))
	for _, r := range m.requests {
		out = append(out, r)
	}
	return out, nil
}

type mockQuestionRepo struct {
	questions map[uuid.UUID]interview.CodingQuestion
	fresh     []interview.CodingQuestion
	deleted   []string
	inserted  [][]interview.CodingQuestion
	byCompany map[string][]string
}

func newMockQuestionRepo(questions ...interview.CodingQuestion) *mockQuestionRepo {
	m := &mockQuestionRepo{
		questions: make(map[uuid.UUID]interview.CodingQuestion),
		byCompany: make(map[string][]string),
	}
	for _, q := range questions {
		m.questions[q.ID] = q
	}
	return m
}

func (m *mockQuestionRepo) InsertBatch(_ context.Context, batch []interview.CodingQuestion) error {
	m.inserted = append(m.inserted, batch)
	for _, q := range batch {
		m.questions[q.ID] = q
	}
	return nil
}

func (m *mockQuestionRepo) GetByID(_ context.Context, id uuid.UUID) (interview.CodingQuestion, error) {
	q, ok := m.questions[id]
	if !ok {
		return interview.CodingQuestion{}, repository.ErrQuestionNotFound
	}
	return q, nil
}

func (m *mockQuestionRepo) FindFreshByCompany(_ context.Context, _ string, since time.Time, limit int) ([]interview.CodingQuestion, error) {
	out := make([]interview.CodingQuestion, 0, len(m.fresh))
	for _, q := range m.fresh {
		if !q.CreatedAt.Before(since) {
			out = append(out, q)
		}
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *mockQuestionRepo) DeleteByCompany(_ context.Context, company string) error {
	m.deleted = append(m.deleted, company)
	m.fresh = nil
	return nil
}

func (m *mockQuestionRepo) IDsByCompany(_ context.Context, company string) ([]string, error) {
	return m.byCompany[company], nil
}

type mockSubmissionRepo struct {
	created []interview.CodeSubmission
	err     error
}

func (m *mockSubmissionRepo) Create(_ context.Context, sub interview.CodeSubmission) error {
	if m.err != nil {
		return m.err
	}
	m.created = append(m.created, sub)
	return nil
}

func (m *mockSubmissionRepo) ListRecentByStudent(context.Context, uuid.UUID, int) ([]interview.CodeSubmission, error) {
	return m.created, nil
}

type mockPrepRepo struct {
	profiles  map[uuid.UUID]interview.PrepProfile
	readiness map[uuid.UUID]float64
}

func newMockPrepRepo(profiles ...interview.PrepProfile) *mockPrepRepo {
	m := &mockPrepRepo{
		profiles:  make(map[uuid.UUID]interview.PrepProfile),
		readiness: make(map[uuid.UUID]float64),
	}
	for _, p := range profiles {
		m.profiles[p.StudentID] = p
	}
	return m
}

func (m *mockPrepRepo) GetByStudent(_ context.Context, studentID uuid.UUID) (interview.PrepProfile, error) {
	p, ok := m.profiles[studentID]
	if !ok {
		return interview.PrepProfile{}, repository.ErrPrepProfileNotFound
	}
	return p, nil
}

func (m *mockPrepRepo) SetTargetCompanies(_ context.Context, studentID uuid.UUID, companies []string) error {
	p := m.profiles[studentID]
	p.StudentID = studentID
	p.TargetCompanies = companies
	m.profiles[studentID] = p
	return nil
}

func (m *mockPrepRepo) RecordResult(_ context.Context, studentID, questionID uuid.UUID, category string, solved bool, practicedAt time.Time) (interview.PrepProfile, error) {
	p := m.profiles[studentID]
	p.StudentID = studentID
	id := questionID.String()
	p.AttemptedQuestions = addToSet(p.AttemptedQuestions, id)
	if solved {
		p.SolvedQuestions = addToSet(p.SolvedQuestions, id)
		p.StrongTopics = addToSet(p.StrongTopics, category)
		p.WeakTopics = removeFromSet(p.WeakTopics, category)
	} else {
		p.FailedQuestions = addToSet(p.FailedQuestions, id)
		p.WeakTopics = addToSet(p.WeakTopics, category)
	}
	p.LastPracticed = &practicedAt
	m.profiles[studentID] = p
	return p, nil
}

func (m *mockPrepRepo) SetReadiness(_ context.Context, studentID uuid.UUID, score float64) error {
	p := m.profiles[studentID]
	p.ReadinessScore = score
	m.profiles[studentID] = p
	m.readiness[studentID] = score
	return nil
}

func addToSet(s []string, v string) []string {
	for _, existing := range s {
		if existing == v {
			return s
		}
	}
	return append(s, v)
}

func removeFromSet(s []string, v string) []string {
	out := s[:0]
	for _, existing := range s {
		if existing != v {
			out = append(out, existing)
		}
	}
	return out
}

type mockChatRepo struct {
	roomMessages []repository.ChatMessage
	aiMessages   []repository.AIChatMessage
	cleared      int
	err          error
}

func (m *mockChatRepo) SaveMessage(_ context.Context, msg repository.ChatMessage) error {
	if m.err != nil {
		return m.err
	}
	m.roomMessages = append(m.roomMessages, msg)
	return nil
}

func (m *mockChatRepo) HistoryByRoom(context.Context, string) ([]repository.ChatMessage, error) {
	return m.roomMessages, nil
}

func (m *mockChatRepo) SaveAIMessage(_ context.Context, msg repository.AIChatMessage) error {
	if m.err != nil {
		return m.err
	}
	m.aiMessages = append(m.aiMessages, msg)
	return nil
}

func (m *mockChatRepo) AIHistoryByUser(context.Context, uuid.UUID, int) ([]repository.AIChatMessage, error) {
	return m.aiMessages, nil
}

func (m *mockChatRepo) ClearAIHistory(context.Context, uuid.UUID) error {
	m.cleared++
	m.aiMessages = nil
	return nil
}

type mockCache struct {
	store    map[string][]byte
	locked   map[string]bool
	deleted  []string
	setCalls int
}

func newMockCache() *mockCache {
	return &mockCache{store: make(map[string][]byte), locked: make(map[string]bool)}
}

func (m *mockCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	b, ok := m.store[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (m *mockCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.store[key] = b
	m.setCalls++
	return nil
}

func (m *mockCache) Delete(_ context.Context, key string) error {
	m.deleted = append(m.deleted, key)
	delete(m.store, key)
	return nil
}

func (m *mockCache) SetIfNotExists(_ context.Context, key, _ string, _ time.Duration) (bool, error) {
	if m.locked[key] {
		return false, nil
	}
	m.locked[key] = true
	return true, nil
}

type mockGenerator struct {
	drafts []interview.QuestionDraft
	err    error
	calls  int
}

func (m *mockGenerator) Generate(context.Context, string, interview.ProfileSummary) ([]interview.QuestionDraft, error) {
	m.calls++
	return m.drafts, m.err
}

type mockExecutor struct {
	execs []grading.Execution
	err   error
}

func (m *mockExecutor) Run(context.Context, string, string, []interview.TestCase) ([]grading.Execution, error) {
	return m.execs, m.err
}

type mockAdvisor struct {
	reply string
	err   error
}

func (m *mockAdvisor) Reply(context.Context, string, string) (string, error) {
	return m.reply, m.err
}
