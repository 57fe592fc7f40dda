package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	dirErrors "github.com/gethelpdesk/helpdesk/directory/errors"
	"github.com/gethelpdesk/helpdesk/directory/models"
	"github.com/gethelpdesk/helpdesk/internal/database/postgres"
)

func notFound(err error, what string, id int64) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %s id=%d", dirErrors.ErrNotFound, what, id)
	}
	return fmt.Errorf("failed to find %s: %w", what, err)
}

func checkAffected(res sql.Result, what string, id int64) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read %s result: %w", what, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s id=%d", dirErrors.ErrNotFound, what, id)
	}
	return nil
}

// --- topics ---

type postgresTopicRepository struct {
	client *postgres.Client
}

// NewPostgresTopicRepository creates a new PostgreSQL topic repository.
func NewPostgresTopicRepository(client *postgres.Client) TopicRepository {
	return &postgresTopicRepository{client: client}
}

const topicColumns = `topic_id, status_id, priority_id, dept_id, agent_id, group_id,
	sla_id, form_id, auto_resp, topic, notes, updated, created`

func (r *postgresTopicRepository) Create(ctx context.Context, topic *models.Topic) error {
	query := `
		INSERT INTO topics (status_id, priority_id, dept_id, agent_id, group_id, sla_id, form_id, auto_resp, topic, notes)
		VALUES (:status_id, :priority_id, :dept_id, :agent_id, :group_id, :sla_id, :form_id, :auto_resp, :topic, :notes)
		RETURNING topic_id, updated, created`

	rows, err := sqlx.NamedQueryContext(ctx, r.client.Executor(ctx), query, topic)
	if err != nil {
		return fmt.Errorf("failed to create topic: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return fmt.Errorf("failed to create topic: no row returned")
	}
	if err := rows.Scan(&topic.TopicID, &topic.Updated, &topic.Created); err != nil {
		return fmt.Errorf("failed to scan created topic: %w", err)
	}
	return nil
}

func (r *postgresTopicRepository) FindByID(ctx context.Context, topicID int64) (*models.Topic, error) {
	var topic models.Topic
	query := `SELECT ` + topicColumns + ` FROM topics WHERE topic_id = $1`
	if err := sqlx.GetContext(ctx, r.client.Executor(ctx), &topic, query, topicID); err != nil {
		return nil, notFound(err, "topic", topicID)
	}
	return &topic, nil
}

func (r *postgresTopicRepository) List(ctx context.Context) ([]models.Topic, error) {
	topics := []models.Topic{}
	query := `SELECT ` + topicColumns + ` FROM topics ORDER BY topic`
	if err := sqlx.SelectContext(ctx, r.client.Executor(ctx), &topics, query); err != nil {
		return nil, fmt.Errorf("failed to list topics: %w", err)
	}
	return topics, nil
}

func (r *postgresTopicRepository) Update(ctx context.Context, topic *models.Topic) error {
	query := `
		UPDATE topics SET status_id = :status_id, priority_id = :priority_id, dept_id = :dept_id,
			agent_id = :agent_id, group_id = :group_id, sla_id = :sla_id, form_id = :form_id,
			auto_resp = :auto_resp, topic = :topic, notes = :notes, updated = NOW()
		WHERE topic_id = :topic_id`
	res, err := sqlx.NamedExecContext(ctx, r.client.Executor(ctx), query, topic)
	if err != nil {
		return fmt.Errorf("failed to update topic: %w", err)
	}
	return checkAffected(res, "topic", topic.TopicID)
}

func (r *postgresTopicRepository) Delete(ctx context.Context, topicID int64) error {
	res, err := r.client.Executor(ctx).ExecContext(ctx, `DELETE FROM topics WHERE topic_id = $1`, topicID)
	if err != nil {
		return fmt.Errorf("failed to delete topic: %w", err)
	}
	return checkAffected(res, "topic", topicID)
}

// --- roles ---

type postgresRoleRepository struct {
	client *postgres.Client
}

// NewPostgresRoleRepository creates a new PostgreSQL role repository.
func NewPostgresRoleRepository(client *postgres.Client) RoleRepository {
	return &postgresRoleRepository{client: client}
}

func (r *postgresRoleRepository) Create(ctx context.Context, role *models.Role) error {
	query := `
		INSERT INTO roles (name, permissions, notes) VALUES ($1, $2, $3)
		RETURNING role_id, updated, created`
	err := r.client.Executor(ctx).QueryRowxContext(ctx, query, role.Name, role.Permissions, role.Notes).
		Scan(&role.RoleID, &role.Updated, &role.Created)
	if err != nil {
		return fmt.Errorf("failed to create role: %w", err)
	}
	return nil
}

func (r *postgresRoleRepository) FindByID(ctx context.Context, roleID int64) (*models.Role, error) {
	var role models.Role
	query := `SELECT role_id, name, permissions, notes, updated, created FROM roles WHERE role_id = $1`
	if err := sqlx.GetContext(ctx, r.client.Executor(ctx), &role, query, roleID); err != nil {
		return nil, notFound(err, "role", roleID)
	}
	return &role, nil
}

func (r *postgresRoleRepository) List(ctx context.Context) ([]models.Role, error) {
	roles := []models.Role{}
	query := `SELECT role_id, name, permissions, notes, updated, created FROM roles ORDER BY name`
	if err := sqlx.SelectContext(ctx, r.client.Executor(ctx), &roles, query); err != nil {
		return nil, fmt.Errorf("failed to list roles: %w", err)
	}
	return roles, nil
}

func (r *postgresRoleRepository) Update(ctx context.Context, role *models.Role) error {
	res, err := r.client.Executor(ctx).ExecContext(ctx,
		`UPDATE roles SET name = $1, permissions = $2, notes = $3, updated = NOW() WHERE role_id = $4`,
		role.Name, role.Permissions, role.Notes, role.RoleID)
	if err != nil {
		return fmt.Errorf("failed to update role: %w", err)
	}
	return checkAffected(res, "role", role.RoleID)
}

func (r *postgresRoleRepository) Delete(ctx context.Context, roleID int64) error {
	res, err := r.client.Executor(ctx).ExecContext(ctx, `DELETE FROM roles WHERE role_id = $1`, roleID)
	if err != nil {
		return fmt.Errorf("failed to delete role: %w", err)
	}
	return checkAffected(res, "role", roleID)
}

// --- slas ---

type postgresSLARepository struct {
	client *postgres.Client
}

// NewPostgresSLARepository creates a new PostgreSQL SLA repository.
func NewPostgresSLARepository(client *postgres.Client) SLARepository {
	return &postgresSLARepository{client: client}
}

func (r *postgresSLARepository) Create(ctx context.Context, sla *models.SLA) error {
	query := `
		INSERT INTO slas (schedule_id, name, grace_period, notes) VALUES ($1, $2, $3, $4)
		RETURNING sla_id, updated, created`
	err := r.client.Executor(ctx).QueryRowxContext(ctx, query, sla.ScheduleID, sla.Name, sla.GracePeriod, sla.Notes).
		Scan(&sla.SLAID, &sla.Updated, &sla.Created)
	if err != nil {
		return fmt.Errorf("failed to create sla: %w", err)
	}
	return nil
}

func (r *postgresSLARepository) FindByID(ctx context.Context, slaID int64) (*models.SLA, error) {
	var sla models.SLA
	query := `SELECT sla_id, schedule_id, name, grace_period, notes, updated, created FROM slas WHERE sla_id = $1`
	if err := sqlx.GetContext(ctx, r.client.Executor(ctx), &sla, query, slaID); err != nil {
		return nil, notFound(err, "sla", slaID)
	}
	return &sla, nil
}

func (r *postgresSLARepository) List(ctx context.Context) ([]models.SLA, error) {
	slas := []models.SLA{}
	query := `SELECT sla_id, schedule_id, name, grace_period, notes, updated, created FROM slas ORDER BY name`
	if err := sqlx.SelectContext(ctx, r.client.Executor(ctx), &slas, query); err != nil {
		return nil, fmt.Errorf("failed to list slas: %w", err)
	}
	return slas, nil
}

func (r *postgresSLARepository) Update(ctx context.Context, sla *models.SLA) error {
	res, err := r.client.Executor(ctx).ExecContext(ctx,
		`UPDATE slas SET schedule_id = $1, name = $2, grace_period = $3, notes = $4, updated = NOW() WHERE sla_id = $5`,
		sla.ScheduleID, sla.Name, sla.GracePeriod, sla.Notes, sla.SLAID)
	if err != nil {
		return fmt.Errorf("failed to update sla: %w", err)
	}
	return checkAffected(res, "sla", sla.SLAID)
}

func (r *postgresSLARepository) Delete(ctx context.Context, slaID int64) error {
	res, err := r.client.Executor(ctx).ExecContext(ctx, `DELETE FROM slas WHERE sla_id = $1`, slaID)
	if err != nil {
		return fmt.Errorf("failed to delete sla: %w", err)
	}
	return checkAffected(res, "sla", slaID)
}

// --- statuses ---

type postgresStatusRepository struct {
	client *postgres.Client
}

// NewPostgresStatusRepository creates a new PostgreSQL status repository.
func NewPostgresStatusRepository(client *postgres.Client) StatusRepository {
	return &postgresStatusRepository{client: client}
}

const statusColumns = `status_id, name, state, mode, sort, properties, updated, created`

func (r *postgresStatusRepository) Create(ctx context.Context, status *models.TicketStatus) error {
	query := `
		INSERT INTO ticket_statuses (name, state, mode, sort, properties) VALUES ($1, $2, $3, $4, $5)
		RETURNING status_id, updated, created`
	err := r.client.Executor(ctx).QueryRowxContext(ctx, query,
		status.Name, status.State, status.Mode, status.Sort, status.Properties).
		Scan(&status.StatusID, &status.Updated, &status.Created)
	if err != nil {
		return fmt.Errorf("failed to create ticket status: %w", err)
	}
	return nil
}

func (r *postgresStatusRepository) FindByID(ctx context.Context, statusID int64) (*models.TicketStatus, error) {
	var status models.TicketStatus
	query := `SELECT ` + statusColumns + ` FROM ticket_statuses WHERE status_id = $1`
	if err := sqlx.GetContext(ctx, r.client.Executor(ctx), &status, query, statusID); err != nil {
		return nil, notFound(err, "ticket status", statusID)
	}
	return &status, nil
}

func (r *postgresStatusRepository) List(ctx context.Context) ([]models.TicketStatus, error) {
	statuses := []models.TicketStatus{}
	query := `SELECT ` + statusColumns + ` FROM ticket_statuses ORDER BY status_id`
	if err := sqlx.SelectContext(ctx, r.client.Executor(ctx), &statuses, query); err != nil {
		return nil, fmt.Errorf("failed to list ticket statuses: %w", err)
	}
	return statuses, nil
}

func (r *postgresStatusRepository) Update(ctx context.Context, status *models.TicketStatus) error {
	res, err := r.client.Executor(ctx).ExecContext(ctx,
		`UPDATE ticket_statuses SET name = $1, state = $2, mode = $3, sort = $4, properties = $5, updated = NOW() WHERE status_id = $6`,
		status.Name, status.State, status.Mode, status.Sort, status.Properties, status.StatusID)
	if err != nil {
		return fmt.Errorf("failed to update ticket status: %w", err)
	}
	return checkAffected(res, "ticket status", status.StatusID)
}

func (r *postgresStatusRepository) Delete(ctx context.Context, statusID int64) error {
	res, err := r.client.Executor(ctx).ExecContext(ctx, `DELETE FROM ticket_statuses WHERE status_id = $1`, statusID)
	if err != nil {
		return fmt.Errorf("failed to delete ticket status: %w", err)
	}
	return checkAffected(res, "ticket status", statusID)
}

// --- priorities ---

type postgresPriorityRepository struct {
	client *postgres.Client
}

// NewPostgresPriorityRepository creates a new PostgreSQL priority repository.
func NewPostgresPriorityRepository(client *postgres.Client) PriorityRepository {
	return &postgresPriorityRepository{client: client}
}

func (r *postgresPriorityRepository) FindByID(ctx context.Context, priorityID int64) (*models.TicketPriority, error) {
	var priority models.TicketPriority
	query := `SELECT priority_id, priority, priority_desc, priority_color, priority_urgency FROM ticket_priorities WHERE priority_id = $1`
	if err := sqlx.GetContext(ctx, r.client.Executor(ctx), &priority, query, priorityID); err != nil {
		return nil, notFound(err, "ticket priority", priorityID)
	}
	return &priority, nil
}

func (r *postgresPriorityRepository) List(ctx context.Context) ([]models.TicketPriority, error) {
	priorities := []models.TicketPriority{}
	query := `SELECT priority_id, priority, priority_desc, priority_color, priority_urgency FROM ticket_priorities ORDER BY priority_urgency`
	if err := sqlx.SelectContext(ctx, r.client.Executor(ctx), &priorities, query); err != nil {
		return nil, fmt.Errorf("failed to list ticket priorities: %w", err)
	}
	return priorities, nil
}

// --- categories ---

type postgresCategoryRepository struct {
	client *postgres.Client
}

// NewPostgresCategoryRepository creates a new PostgreSQL category repository.
func NewPostgresCategoryRepository(client *postgres.Client) CategoryRepository {
	return &postgresCategoryRepository{client: client}
}

func (r *postgresCategoryRepository) Create(ctx context.Context, category *models.Category) error {
	query := `
		INSERT INTO categories (name, notes, group_id) VALUES ($1, $2, $3)
		RETURNING category_id, updated, created`
	err := r.client.Executor(ctx).QueryRowxContext(ctx, query, category.Name, category.Notes, category.GroupID).
		Scan(&category.CategoryID, &category.Updated, &category.Created)
	if err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

func (r *postgresCategoryRepository) FindByID(ctx context.Context, categoryID int64) (*models.Category, error) {
	var category models.Category
	query := `SELECT category_id, name, notes, group_id, updated, created FROM categories WHERE category_id = $1`
	if err := sqlx.GetContext(ctx, r.client.Executor(ctx), &category, query, categoryID); err != nil {
		return nil, notFound(err, "category", categoryID)
	}
	return &category, nil
}

func (r *postgresCategoryRepository) List(ctx context.Context) ([]models.Category, error) {
	categories := []models.Category{}
	query := `SELECT category_id, name, notes, group_id, updated, created FROM categories ORDER BY name`
	if err := sqlx.SelectContext(ctx, r.client.Executor(ctx), &categories, query); err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

func (r *postgresCategoryRepository) Update(ctx context.Context, category *models.Category) error {
	res, err := r.client.Executor(ctx).ExecContext(ctx,
		`UPDATE categories SET name = $1, notes = $2, group_id = $3, updated = NOW() WHERE category_id = $4`,
		category.Name, category.Notes, category.GroupID, category.CategoryID)
	if err != nil {
		return fmt.Errorf("failed to update category: %w", err)
	}
	return checkAffected(res, "category", category.CategoryID)
}

func (r *postgresCategoryRepository) Delete(ctx context.Context, categoryID int64) error {
	res, err := r.client.Executor(ctx).ExecContext(ctx, `DELETE FROM categories WHERE category_id = $1`, categoryID)
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	return checkAffected(res, "category", categoryID)
}
