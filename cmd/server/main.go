package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/gethelpdesk/helpdesk/agents"
	agentErrors "github.com/gethelpdesk/helpdesk/agents/errors"
	agentHandlers "github.com/gethelpdesk/helpdesk/agents/handlers"
	agentRepository "github.com/gethelpdesk/helpdesk/agents/repository"
	agentServices "github.com/gethelpdesk/helpdesk/agents/services"
	"github.com/gethelpdesk/helpdesk/departments"
	deptErrors "github.com/gethelpdesk/helpdesk/departments/errors"
	deptHandlers "github.com/gethelpdesk/helpdesk/departments/handlers"
	deptRepository "github.com/gethelpdesk/helpdesk/departments/repository"
	"github.com/gethelpdesk/helpdesk/directory"
	dirErrors "github.com/gethelpdesk/helpdesk/directory/errors"
	dirHandlers "github.com/gethelpdesk/helpdesk/directory/handlers"
	dirRepository "github.com/gethelpdesk/helpdesk/directory/repository"
	dirServices "github.com/gethelpdesk/helpdesk/directory/services"
	"github.com/gethelpdesk/helpdesk/forms"
	formHandlers "github.com/gethelpdesk/helpdesk/forms/handlers"
	formRepository "github.com/gethelpdesk/helpdesk/forms/repository"
	formServices "github.com/gethelpdesk/helpdesk/forms/services"
	"github.com/gethelpdesk/helpdesk/groups"
	groupErrors "github.com/gethelpdesk/helpdesk/groups/errors"
	groupHandlers "github.com/gethelpdesk/helpdesk/groups/handlers"
	groupRepository "github.com/gethelpdesk/helpdesk/groups/repository"
	groupServices "github.com/gethelpdesk/helpdesk/groups/services"
	"github.com/gethelpdesk/helpdesk/internal/database/migrate"
	"github.com/gethelpdesk/helpdesk/internal/database/postgres"
	"github.com/gethelpdesk/helpdesk/internal/middleware/requestid"
	"github.com/gethelpdesk/helpdesk/internal/pkg/log"
	"github.com/gethelpdesk/helpdesk/internal/platform/config"
	"github.com/gethelpdesk/helpdesk/internal/platform/email"
	"github.com/gethelpdesk/helpdesk/queues"
	queueHandlers "github.com/gethelpdesk/helpdesk/queues/handlers"
	queueRepository "github.com/gethelpdesk/helpdesk/queues/repository"
	queueServices "github.com/gethelpdesk/helpdesk/queues/services"
	"github.com/gethelpdesk/helpdesk/schedules"
	schedHandlers "github.com/gethelpdesk/helpdesk/schedules/handlers"
	schedRepository "github.com/gethelpdesk/helpdesk/schedules/repository"
	"github.com/gethelpdesk/helpdesk/settings"
	settingHandlers "github.com/gethelpdesk/helpdesk/settings/handlers"
	settingRepository "github.com/gethelpdesk/helpdesk/settings/repository"
	"github.com/gethelpdesk/helpdesk/tasks"
	taskHandlers "github.com/gethelpdesk/helpdesk/tasks/handlers"
	taskRepository "github.com/gethelpdesk/helpdesk/tasks/repository"
	taskServices "github.com/gethelpdesk/helpdesk/tasks/services"
	"github.com/gethelpdesk/helpdesk/threads"
	threadHandlers "github.com/gethelpdesk/helpdesk/threads/handlers"
	threadRepository "github.com/gethelpdesk/helpdesk/threads/repository"
	threadServices "github.com/gethelpdesk/helpdesk/threads/services"
	"github.com/gethelpdesk/helpdesk/tickets"
	"github.com/gethelpdesk/helpdesk/tickets/audit"
	ticketHandlers "github.com/gethelpdesk/helpdesk/tickets/handlers"
	ticketRepository "github.com/gethelpdesk/helpdesk/tickets/repository"
	ticketServices "github.com/gethelpdesk/helpdesk/tickets/services"
	"github.com/gethelpdesk/helpdesk/users"
	userErrors "github.com/gethelpdesk/helpdesk/users/errors"
	userHandlers "github.com/gethelpdesk/helpdesk/users/handlers"
	userRepository "github.com/gethelpdesk/helpdesk/users/repository"
	userServices "github.com/gethelpdesk/helpdesk/users/services"
)

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Error("failed to load config: %v", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pgClient, err := postgres.NewClient(ctx, &cfg.Database.Postgres)
	if err != nil {
		log.Error("failed to connect to postgres: %v", err)
		os.Exit(1)
	}
	defer pgClient.Close()

	if err := migrate.Up(pgClient.DB().DB, cfg.Database.Postgres.Database); err != nil {
		log.Error("failed to run migrations: %v", err)
		os.Exit(1)
	}

	// Repositories.
	ticketRepo := ticketRepository.NewPostgresTicketRepository(pgClient)
	threadRepo := threadRepository.NewPostgresThreadRepository(pgClient)
	userRepo := userRepository.NewPostgresUserRepository(pgClient)
	agentRepo := agentRepository.NewPostgresAgentRepository(pgClient)
	deptRepo := deptRepository.NewPostgresDepartmentRepository(pgClient)
	groupRepo := groupRepository.NewPostgresGroupRepository(pgClient)
	topicRepo := dirRepository.NewPostgresTopicRepository(pgClient)
	roleRepo := dirRepository.NewPostgresRoleRepository(pgClient)
	slaRepo := dirRepository.NewPostgresSLARepository(pgClient)
	statusRepo := dirRepository.NewPostgresStatusRepository(pgClient)
	priorityRepo := dirRepository.NewPostgresPriorityRepository(pgClient)
	categoryRepo := dirRepository.NewPostgresCategoryRepository(pgClient)
	formRepo := formRepository.NewPostgresFormRepository(pgClient)
	queueRepo := queueRepository.NewPostgresQueueRepository(pgClient)
	taskRepo := taskRepository.NewPostgresTaskRepository(pgClient)
	schedRepo := schedRepository.NewPostgresScheduleRepository(pgClient)
	settingRepo := settingRepository.NewPostgresSettingsRepository(pgClient)

	// Outbound mail. Without SMTP config the sender is a no-op.
	var sender email.Sender = email.NoopSender{}
	if cfg.Email.SMTPHost != "" {
		smtp, err := email.NewSMTPSender(cfg.Email.SMTPHost, strconv.Itoa(cfg.Email.SMTPPort),
			cfg.Email.SMTPUser, cfg.Email.SMTPPass)
		if err != nil {
			log.Error("failed to configure SMTP sender: %v", err)
			os.Exit(1)
		}
		sender = smtp
	}

	// Audit engine: declares which ticket fields are foreign keys and
	// how their ids resolve to the labels recorded in change events.
	engine := audit.NewEngine(map[string]audit.Lookup{
		"agent_id": audit.LookupFunc(func(ctx context.Context, id int64) (string, bool, error) {
			agent, err := agentRepo.FindByID(ctx, id)
			if err != nil {
				return "", false, ignoreNotFound(err, agentErrors.ErrAgentNotFound)
			}
			return agent.FullName(), true, nil
		}),
		"user_id": audit.LookupFunc(func(ctx context.Context, id int64) (string, bool, error) {
			user, err := userRepo.FindByID(ctx, id)
			if err != nil {
				return "", false, ignoreNotFound(err, userErrors.ErrUserNotFound)
			}
			return user.Name, true, nil
		}),
		"dept_id": audit.LookupFunc(func(ctx context.Context, id int64) (string, bool, error) {
			dept, err := deptRepo.FindByID(ctx, id)
			if err != nil {
				return "", false, ignoreNotFound(err, deptErrors.ErrDepartmentNotFound)
			}
			return dept.Name, true, nil
		}),
		"group_id": audit.LookupFunc(func(ctx context.Context, id int64) (string, bool, error) {
			group, err := groupRepo.FindByID(ctx, id)
			if err != nil {
				return "", false, ignoreNotFound(err, groupErrors.ErrGroupNotFound)
			}
			return group.Name, true, nil
		}),
		"status_id": audit.LookupFunc(func(ctx context.Context, id int64) (string, bool, error) {
			status, err := statusRepo.FindByID(ctx, id)
			if err != nil {
				return "", false, ignoreNotFound(err, dirErrors.ErrNotFound)
			}
			return status.Name, true, nil
		}),
		"priority_id": audit.LookupFunc(func(ctx context.Context, id int64) (string, bool, error) {
			priority, err := priorityRepo.FindByID(ctx, id)
			if err != nil {
				return "", false, ignoreNotFound(err, dirErrors.ErrNotFound)
			}
			return priority.Priority, true, nil
		}),
		"sla_id": audit.LookupFunc(func(ctx context.Context, id int64) (string, bool, error) {
			sla, err := slaRepo.FindByID(ctx, id)
			if err != nil {
				return "", false, ignoreNotFound(err, dirErrors.ErrNotFound)
			}
			return sla.Name, true, nil
		}),
		"category_id": audit.LookupFunc(func(ctx context.Context, id int64) (string, bool, error) {
			category, err := categoryRepo.FindByID(ctx, id)
			if err != nil {
				return "", false, ignoreNotFound(err, dirErrors.ErrNotFound)
			}
			return category.Name, true, nil
		}),
		"topic_id": audit.LookupFunc(func(ctx context.Context, id int64) (string, bool, error) {
			topic, err := topicRepo.FindByID(ctx, id)
			if err != nil {
				return "", false, ignoreNotFound(err, dirErrors.ErrNotFound)
			}
			return topic.Topic, true, nil
		}),
	})

	// Services.
	ticketService := ticketServices.NewTicketService(ticketRepo, threadRepo, userRepo,
		topicRepo, slaRepo, engine, sender, cfg.Email.SMTPEmail)
	threadService := threadServices.NewThreadService(threadRepo)
	userService := userServices.NewUserService(userRepo)
	agentService := agentServices.NewAgentService(agentRepo, cfg.JWT)
	groupService := groupServices.NewGroupService(groupRepo)
	directoryService := dirServices.NewDirectoryService(topicRepo, roleRepo, slaRepo,
		statusRepo, priorityRepo, categoryRepo)
	formService := formServices.NewFormService(formRepo)
	queueService := queueServices.NewQueueService(queueRepo, ticketService)
	taskService := taskServices.NewTaskService(taskRepo)

	app := fiber.New(fiber.Config{
		AppName: cfg.App.Name,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				code = fiberErr.Code
			}
			return c.Status(code).JSON(fiber.Map{"error": err.Error()})
		},
	})

	app.Use(requestid.New())
	app.Use(cors.New(cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, DELETE, OPTIONS",
	}))

	tickets.RegisterRoutes(app, &tickets.TicketsHandlers{
		TicketHandler: ticketHandlers.NewTicketHandler(ticketService),
	}, cfg)
	threads.RegisterRoutes(app, &threads.ThreadsHandlers{
		ThreadHandler: threadHandlers.NewThreadHandler(threadService),
	}, cfg)
	users.RegisterRoutes(app, &users.UsersHandlers{
		UserHandler: userHandlers.NewUserHandler(userService),
	}, cfg)
	agents.RegisterRoutes(app, &agents.AgentsHandlers{
		AgentHandler: agentHandlers.NewAgentHandler(agentService),
	}, cfg)
	departments.RegisterRoutes(app, &departments.DepartmentsHandlers{
		DepartmentHandler: deptHandlers.NewDepartmentHandler(deptRepo),
	}, cfg)
	groups.RegisterRoutes(app, &groups.GroupsHandlers{
		GroupHandler: groupHandlers.NewGroupHandler(groupService),
	}, cfg)
	directory.RegisterRoutes(app, &directory.DirectoryHandlers{
		DirectoryHandler: dirHandlers.NewDirectoryHandler(directoryService),
	}, cfg)
	forms.RegisterRoutes(app, &forms.FormsHandlers{
		FormHandler: formHandlers.NewFormHandler(formService),
	}, cfg)
	queues.RegisterRoutes(app, &queues.QueuesHandlers{
		QueueHandler: queueHandlers.NewQueueHandler(queueService),
	}, cfg)
	tasks.RegisterRoutes(app, &tasks.TasksHandlers{
		TaskHandler: taskHandlers.NewTaskHandler(taskService),
	}, cfg)
	schedules.RegisterRoutes(app, &schedules.SchedulesHandlers{
		ScheduleHandler: schedHandlers.NewScheduleHandler(schedRepo),
	}, cfg)
	settings.RegisterRoutes(app, &settings.SettingsHandlers{
		SettingsHandler: settingHandlers.NewSettingsHandler(settingRepo),
	}, cfg)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	go func() {
		log.Info("starting %s on %s", cfg.App.Name, addr)
		if err := app.Listen(addr); err != nil {
			log.Error("server stopped: %v", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	if err := app.Shutdown(); err != nil {
		log.Error("shutdown failed: %v", err)
	}
}

// ignoreNotFound keeps missing-row lookups non-fatal for audit
// resolution: the event simply records a null label.
func ignoreNotFound(err, notFound error) error {
	if errors.Is(err, notFound) {
		return nil
	}
	return err
}
