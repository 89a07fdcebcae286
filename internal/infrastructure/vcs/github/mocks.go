package github

import (
	"context"

	"github.com/google/go-github/v80/github"
	"github.com/stretchr/testify/mock"
)

type MockPRService struct {
	mock.Mock
}

func (m *MockPRService) Get(ctx context.Context, owner, repo string, number int) (*github.PullRequest, *github.Response, error) {
	args := m.Called(ctx, owner, repo, number)
	pr, _ := args.Get(0).(*github.PullRequest)
	resp, _ := args.Get(1).(*github.Response)
	return pr, resp, args.Error(2)
}

func (m *MockPRService) ListFiles(ctx context.Context, owner, repo string, number int, opts *github.ListOptions) ([]*github.CommitFile, *github.Response, error) {
	args := m.Called(ctx, owner, repo, number, opts)
	files, _ := args.Get(0).([]*github.CommitFile)
	resp, _ := args.Get(1).(*github.Response)
	return files, resp, args.Error(2)
}

func (m *MockPRService) ListCommits(ctx context.Context, owner, repo string, number int, opts *github.ListOptions) ([]*github.RepositoryCommit, *github.Response, error) {
	args := m.Called(ctx, owner, repo, number, opts)
	commits, _ := args.Get(0).([]*github.RepositoryCommit)
	resp, _ := args.Get(1).(*github.Response)
	return commits, resp, args.Error(2)
}
