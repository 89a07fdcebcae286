// Package github implementa el cliente de solo lectura contra la API de
// GitHub. Trae el PR, sus archivos y sus commits, y no escribe nada en el
// repositorio remoto.
package github

import (
	"context"
	"errors"
	"net/http"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/google/go-github/v80/github"
	"golang.org/x/oauth2"

	"github.com/mate-labs/matepr/internal/domain/models"
	"github.com/mate-labs/matepr/internal/domain/ports"
	domainErrors "github.com/mate-labs/matepr/internal/errors"
	"github.com/mate-labs/matepr/internal/i18n"
	"github.com/mate-labs/matepr/internal/logger"
)

var _ ports.VCSClient = (*GitHubClient)(nil)

// repoPattern valida el formato owner/name.
var repoPattern = regexp.MustCompile(`^[\w.-]+/[\w.-]+$`)

const (
	// listPageSize es el tamaño de página para listar archivos y commits.
	listPageSize = 100

	// maxPatchChars limita el patch que se guarda por archivo para no
	// arrastrar diffs gigantes por todo el pipeline.
	maxPatchChars = 500

	// shortSHALen es el largo del SHA abreviado de los commits.
	shortSHALen = 7
)

// PullRequestsService es el recorte de la API de pull requests que usa el
// cliente. Tenerlo como interfaz permite mockearlo en los tests.
type PullRequestsService interface {
	Get(ctx context.Context, owner, repo string, number int) (*github.PullRequest, *github.Response, error)
	ListFiles(ctx context.Context, owner, repo string, number int, opts *github.ListOptions) ([]*github.CommitFile, *github.Response, error)
	ListCommits(ctx context.Context, owner, repo string, number int, opts *github.ListOptions) ([]*github.RepositoryCommit, *github.Response, error)
}

type GitHubClient struct {
	prService PullRequestsService
	owner     string
	repo      string
	trans     *i18n.Translations
}

// NewGitHubClient crea el cliente para un repositorio en formato owner/name.
// Sin token no hay cliente: la API de GitHub limita muchísimo las llamadas
// anónimas y los repos privados directamente no se ven.
func NewGitHubClient(repo, token string, trans *i18n.Translations) (*GitHubClient, error) {
	if !repoPattern.MatchString(repo) {
		return nil, domainErrors.ErrInvalidRepoFormat.WithContext("repo", repo)
	}
	if token == "" {
		return nil, domainErrors.ErrTokenMissing
	}

	parts := strings.SplitN(repo, "/", 2)

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	httpClient := oauth2.NewClient(context.Background(), ts)
	client := github.NewClient(httpClient)

	return &GitHubClient{
		prService: client.PullRequests,
		owner:     parts[0],
		repo:      parts[1],
		trans:     trans,
	}, nil
}

// NewGitHubClientWithServices crea el cliente inyectando el servicio de pull
// requests, pensado para los tests.
func NewGitHubClientWithServices(prService PullRequestsService, owner, repo string, trans *i18n.Translations) *GitHubClient {
	return &GitHubClient{
		prService: prService,
		owner:     owner,
		repo:      repo,
		trans:     trans,
	}
}

// GetPR arma el contexto completo del PR: metadatos, archivos modificados con
// sus stats y los mensajes de commit. Son tres llamadas a la API, en orden,
// y cualquier falla corta todo.
func (ghc *GitHubClient) GetPR(ctx context.Context, prNumber int) (models.PRContext, error) {
	if prNumber <= 0 {
		return models.PRContext{}, domainErrors.ErrInvalidPRNumber.WithContext("pr_number", prNumber)
	}

	log := logger.FromContext(ctx)
	log.Debug("consultando PR en GitHub", "repo", ghc.slug(), "pr_number", prNumber)

	pr, resp, err := ghc.prService.Get(ctx, ghc.owner, ghc.repo, prNumber)
	if err != nil {
		return models.PRContext{}, ghc.wrapAPIError(err, resp, prNumber, "error.get_pr")
	}

	files, err := ghc.listAllFiles(ctx, prNumber)
	if err != nil {
		return models.PRContext{}, err
	}

	commits, err := ghc.listAllCommits(ctx, prNumber)
	if err != nil {
		return models.PRContext{}, err
	}

	prCtx := models.PRContext{
		Repo:         ghc.slug(),
		Number:       pr.GetNumber(),
		Title:        pr.GetTitle(),
		Description:  pr.GetBody(),
		Author:       pr.GetUser().GetLogin(),
		State:        pr.GetState(),
		CreatedAt:    pr.GetCreatedAt().Time,
		BaseBranch:   pr.GetBase().GetRef(),
		HeadBranch:   pr.GetHead().GetRef(),
		Additions:    pr.GetAdditions(),
		Deletions:    pr.GetDeletions(),
		ChangedFiles: pr.GetChangedFiles(),
		Files:        files,
		Commits:      commits,
	}
	for _, label := range pr.Labels {
		prCtx.Labels = append(prCtx.Labels, label.GetName())
	}

	log.Debug("PR obtenido",
		"pr_number", prCtx.Number,
		"files_count", len(prCtx.Files),
		"commits_count", len(prCtx.Commits),
	)
	return prCtx, nil
}

func (ghc *GitHubClient) slug() string {
	return ghc.owner + "/" + ghc.repo
}

func (ghc *GitHubClient) listAllFiles(ctx context.Context, prNumber int) ([]models.ChangedFile, error) {
	var files []models.ChangedFile
	opts := &github.ListOptions{PerPage: listPageSize}

	for {
		page, resp, err := ghc.prService.ListFiles(ctx, ghc.owner, ghc.repo, prNumber, opts)
		if err != nil {
			return nil, ghc.wrapAPIError(err, resp, prNumber, "error.get_pr_files")
		}
		for _, f := range page {
			files = append(files, models.ChangedFile{
				Path:      f.GetFilename(),
				Status:    f.GetStatus(),
				Additions: f.GetAdditions(),
				Deletions: f.GetDeletions(),
				Patch:     truncatePatch(f.GetPatch()),
			})
		}
		if resp == nil || resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}
	return files, nil
}

func (ghc *GitHubClient) listAllCommits(ctx context.Context, prNumber int) ([]models.CommitInfo, error) {
	var commits []models.CommitInfo
	opts := &github.ListOptions{PerPage: listPageSize}

	for {
		page, resp, err := ghc.prService.ListCommits(ctx, ghc.owner, ghc.repo, prNumber, opts)
		if err != nil {
			return nil, ghc.wrapAPIError(err, resp, prNumber, "error.get_pr_commits")
		}
		for _, rc := range page {
			commits = append(commits, models.CommitInfo{
				SHA:     shortSHA(rc.GetSHA()),
				Message: firstLine(rc.GetCommit().GetMessage()),
				Author:  rc.GetCommit().GetAuthor().GetName(),
			})
		}
		if resp == nil || resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}
	return commits, nil
}

// wrapAPIError traduce los errores de la API de GitHub a errores del dominio.
// El mensaje localizado se usa para las fallas genéricas.
func (ghc *GitHubClient) wrapAPIError(err error, resp *github.Response, prNumber int, messageID string) error {
	var rateLimitErr *github.RateLimitError
	var abuseErr *github.AbuseRateLimitError
	if errors.As(err, &rateLimitErr) || errors.As(err, &abuseErr) {
		return domainErrors.ErrGitHubRateLimit.WithError(err).WithContext("repo", ghc.slug())
	}

	if resp == nil {
		return domainErrors.ErrGitHubUnreachable.WithError(err).WithContext("repo", ghc.slug())
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return domainErrors.ErrGitHubTokenInvalid.WithError(err)
	case http.StatusForbidden:
		return domainErrors.ErrGitHubInsufficientPerms.WithError(err).WithContext("repo", ghc.slug())
	case http.StatusNotFound:
		return domainErrors.ErrRepositoryNotFound.WithError(err).
			WithContext("repo", ghc.slug()).
			WithContext("pr_number", prNumber)
	default:
		message := ghc.trans.GetMessage(messageID, 0, map[string]interface{}{"PRNumber": prNumber})
		return domainErrors.NewAppError(domainErrors.TypeNetwork, message, err)
	}
}

func shortSHA(sha string) string {
	if len(sha) > shortSHALen {
		return sha[:shortSHALen]
	}
	return sha
}

// firstLine se queda con la primera línea del mensaje de commit, que es lo
// único que entra al prompt.
func firstLine(message string) string {
	if idx := strings.IndexByte(message, '\n'); idx >= 0 {
		return strings.TrimSpace(message[:idx])
	}
	return strings.TrimSpace(message)
}

func truncatePatch(patch string) string {
	if utf8.RuneCountInString(patch) <= maxPatchChars {
		return patch
	}
	return string([]rune(patch)[:maxPatchChars])
}
