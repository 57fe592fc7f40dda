package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	gopass "github.com/nbutton23/zxcvbn-go"
	"golang.org/x/crypto/bcrypt"

	agentErrors "github.com/gethelpdesk/helpdesk/agents/errors"
	"github.com/gethelpdesk/helpdesk/agents/models"
	"github.com/gethelpdesk/helpdesk/agents/repository"
	"github.com/gethelpdesk/helpdesk/internal/platform/config"
)

// AgentService defines the interface for agent operations.
type AgentService interface {
	Create(ctx context.Context, params *models.CreateAgentParams) (*models.Agent, error)
	Get(ctx context.Context, agentID int64) (*models.Agent, error)
	List(ctx context.Context, page, size int) ([]models.Agent, error)
	Update(ctx context.Context, agentID int64, params *models.UpdateAgentParams) (*models.Agent, error)
	ChangePassword(ctx context.Context, agentID int64, password string) error

	// Delete removes an agent and unassigns their open tickets in one
	// transaction.
	Delete(ctx context.Context, agentID int64) error

	// Login checks credentials and issues an HS256 agent token.
	Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error)
}

type agentService struct {
	repo      repository.AgentRepository
	jwtSecret string
	jwtExpiry time.Duration
}

// NewAgentService creates a new instance of the agent service.
func NewAgentService(repo repository.AgentRepository, jwtConfig config.JWTConfig) AgentService {
	return &agentService{
		repo:      repo,
		jwtSecret: jwtConfig.Secret,
		jwtExpiry: jwtConfig.Expiry,
	}
}

func (s *agentService) Create(ctx context.Context, params *models.CreateAgentParams) (*models.Agent, error) {
	if params.Email == "" || !strings.Contains(params.Email, "@") {
		return nil, fmt.Errorf("%w: a valid email is required", agentErrors.ErrInvalidAgentData)
	}
	if params.Username == "" {
		return nil, fmt.Errorf("%w: username is required", agentErrors.ErrInvalidAgentData)
	}
	if err := screenPassword(params.Password); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(params.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	agent := &models.Agent{
		DeptID:    params.DeptID,
		RoleID:    params.RoleID,
		Email:     strings.ToLower(params.Email),
		Username:  params.Username,
		Password:  string(hash),
		Phone:     params.Phone,
		Firstname: params.Firstname,
		Lastname:  params.Lastname,
		Signature: params.Signature,
		Timezone:  params.Timezone,
		Admin:     params.Admin,
	}
	if err := s.repo.Create(ctx, agent); err != nil {
		return nil, err
	}
	return agent, nil
}

func (s *agentService) Get(ctx context.Context, agentID int64) (*models.Agent, error) {
	return s.repo.FindByID(ctx, agentID)
}

func (s *agentService) List(ctx context.Context, page, size int) ([]models.Agent, error) {
	if size <= 0 || size > 100 {
		size = 25
	}
	if page < 1 {
		page = 1
	}
	return s.repo.List(ctx, size, (page-1)*size)
}

func (s *agentService) Update(ctx context.Context, agentID int64, params *models.UpdateAgentParams) (*models.Agent, error) {
	agent, err := s.repo.FindByID(ctx, agentID)
	if err != nil {
		return nil, err
	}

	agent.DeptID = params.DeptID
	agent.RoleID = params.RoleID
	if params.Email != "" {
		agent.Email = strings.ToLower(params.Email)
	}
	if params.Username != "" {
		agent.Username = params.Username
	}
	agent.Phone = params.Phone
	agent.Firstname = params.Firstname
	agent.Lastname = params.Lastname
	agent.Signature = params.Signature
	agent.Timezone = params.Timezone
	agent.Admin = params.Admin

	if err := s.repo.Update(ctx, agent); err != nil {
		return nil, err
	}
	return agent, nil
}

func (s *agentService) ChangePassword(ctx context.Context, agentID int64, password string) error {
	if err := screenPassword(password); err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	return s.repo.UpdatePassword(ctx, agentID, string(hash))
}

func (s *agentService) Delete(ctx context.Context, agentID int64) error {
	return s.repo.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.repo.ClearTicketAssignments(txCtx, agentID); err != nil {
			return err
		}
		return s.repo.Delete(txCtx, agentID)
	})
}

func (s *agentService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	if req == nil || req.Email == "" || req.Password == "" {
		return nil, agentErrors.ErrInvalidCredentials
	}

	agent, err := s.repo.FindByEmail(ctx, strings.ToLower(req.Email))
	if err != nil {
		// Collapse not-found into the credentials error so login does
		// not reveal which emails exist.
		return nil, agentErrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(agent.Password), []byte(req.Password)); err != nil {
		return nil, agentErrors.ErrInvalidCredentials
	}

	token, err := s.issueToken(agent)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &models.LoginResponse{Token: token, Agent: agent}, nil
}

func (s *agentService) issueToken(agent *models.Agent) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"agent_id": agent.AgentID,
		"admin":    agent.Admin > 0,
		"name":     agent.FullName(),
		"iat":      now.Unix(),
		"exp":      now.Add(s.jwtExpiry).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

// screenPassword applies the zxcvbn strength gate used across the stack.
func screenPassword(password string) error {
	if password == "" {
		return fmt.Errorf("%w: password is required", agentErrors.ErrInvalidAgentData)
	}
	strength := gopass.PasswordStrength(password, nil)
	if strength.Score < 3 || strength.Entropy < 37 {
		return agentErrors.ErrWeakPassword
	}
	return nil
}
