package rest_test

import (
	"context"
	"time"

	"github.com/nDmitry/rssreader/internal/entity"
	"github.com/nDmitry/rssreader/internal/state"
)

// MockActions is a mock implementation of the Actions interface
type MockActions struct {
	SubmitFunc         func(ctx context.Context, url string) error
	SwitchLanguageFunc func(lng string) error
	OpenPostFunc       func(link string) bool
	PreviewPostFunc    func(link string) bool
	ClosePreviewFunc   func()
}

func (m *MockActions) Submit(ctx context.Context, url string) error {
	return m.SubmitFunc(ctx, url)
}

func (m *MockActions) SwitchLanguage(lng string) error {
	return m.SwitchLanguageFunc(lng)
}

func (m *MockActions) OpenPost(link string) bool {
	return m.OpenPostFunc(link)
}

func (m *MockActions) PreviewPost(link string) bool {
	return m.PreviewPostFunc(link)
}

func (m *MockActions) ClosePreview() {
	m.ClosePreviewFunc()
}

// MockPage is a mock implementation of the Page interface
type MockPage struct {
	HTMLFunc func() (string, error)
}

func (m *MockPage) HTML() (string, error) {
	return m.HTMLFunc()
}

// MockSource is a mock implementation of the StateSource interface
type MockSource struct {
	State state.State
}

func (m *MockSource) Snapshot() state.State {
	return m.State
}

// MockGenerator is a mock implementation of the Generator interface
type MockGenerator struct {
	GenerateFunc func(feeds []entity.Feed, posts []entity.Post, params *entity.ExportParams) ([]byte, error)
}

func (m *MockGenerator) Generate(feeds []entity.Feed, posts []entity.Post, params *entity.ExportParams) ([]byte, error) {
	return m.GenerateFunc(feeds, posts, params)
}

// MockCache is a mock implementation of the Cache interface
type MockCache struct {
	GetFunc func(ctx context.Context, key string) ([]byte, error)
	SetFunc func(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

func (m *MockCache) Get(ctx context.Context, key string) ([]byte, error) {
	return m.GetFunc(ctx, key)
}

func (m *MockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return m.SetFunc(ctx, key, value, ttl)
}

func (m *MockCache) Close() error {
	return nil
}
