package tookan

import (
	"context"
	"errors"

	"fleet/internal/core/application/usecases/commands"
	"fleet/internal/core/application/usecases/queries"
	"fleet/internal/core/ports"
	"fleet/internal/pkg/errs"
	"fleet/internal/pkg/validate"
)

// Adapter serves the inbound Tookan operations by translating payloads and
// running the matching fleet commands and queries.
//
// Integer job_id and fleet_id values are resolved only through the ID mapping
// table. New tasks are attached to the store nearest to the pickup point.
type Adapter struct {
	createOrder   commands.CreateOrderCommandHandler
	assignDriver  commands.AssignDriverCommandHandler
	createDriver  commands.CreateDriverCommandHandler
	updateProfile commands.UpdateDriverProfileCommandHandler

	getDriver    queries.GetDriverQueryHandler
	jobDetails   queries.GetJobDetailsQueryHandler
	nearestStore queries.FindNearestStoreQueryHandler
	resolveID    queries.ResolveExternalIDQueryHandler

	validator *validate.Validator
}

// Handlers groups the application handlers the Adapter depends on.
type Handlers struct {
	CreateOrder   commands.CreateOrderCommandHandler
	AssignDriver  commands.AssignDriverCommandHandler
	CreateDriver  commands.CreateDriverCommandHandler
	UpdateProfile commands.UpdateDriverProfileCommandHandler
	GetDriver     queries.GetDriverQueryHandler
	JobDetails    queries.GetJobDetailsQueryHandler
	NearestStore  queries.FindNearestStoreQueryHandler
	ResolveID     queries.ResolveExternalIDQueryHandler
}

// NewAdapter creates an Adapter.
func NewAdapter(h Handlers, validator *validate.Validator) *Adapter {
	return &Adapter{
		createOrder:   h.CreateOrder,
		assignDriver:  h.AssignDriver,
		createDriver:  h.CreateDriver,
		updateProfile: h.UpdateProfile,
		getDriver:     h.GetDriver,
		jobDetails:    h.JobDetails,
		nearestStore:  h.NearestStore,
		resolveID:     h.ResolveID,
		validator:     validator,
	}
}

// CreateTask creates an order from a create_task payload and allocates its
// job_id. A fleet_id assigns the mapped driver in the same transaction.
func (a *Adapter) CreateTask(ctx context.Context, req CreateTaskRequest) (TaskCreated, error) {
	if err := a.validator.Struct(req); err != nil {
		return TaskCreated{}, err
	}

	task, err := TaskToOrder(req)
	if err != nil {
		return TaskCreated{}, err
	}

	storeQuery, err := queries.NewFindNearestStoreQuery(task.Details.Origin.Lat(), task.Details.Origin.Lng())
	if err != nil {
		return TaskCreated{}, err
	}
	store, err := a.nearestStore.Handle(ctx, storeQuery)
	if err != nil {
		return TaskCreated{}, err
	}
	task.Details.StoreID = store.ID

	var driverID *string
	if task.FleetID != nil {
		id, resolveErr := a.resolve(ctx, ports.MappingDriver, *task.FleetID, "fleet_id")
		if resolveErr != nil {
			return TaskCreated{}, resolveErr
		}
		driverID = &id
	}

	cmd, err := commands.NewCreateOrderCommand("", task.Details, task.InitialStatus, driverID, nil)
	if err != nil {
		return TaskCreated{}, err
	}
	created, err := a.createOrder.Handle(ctx, cmd.WithExternalID())
	if err != nil {
		return TaskCreated{}, err
	}
	if created.ExternalID == nil {
		return TaskCreated{}, errors.New("tookan: job_id was not allocated")
	}

	return TaskCreated{
		JobID:     *created.ExternalID,
		OrderID:   created.Order.Details().Title,
		JobStatus: StatusToCode(created.Order.Status()),
	}, nil
}

// AddAgent registers a driver and allocates its fleet_id.
func (a *Adapter) AddAgent(ctx context.Context, req AgentRequest) (AgentSaved, error) {
	if err := a.validator.Struct(req); err != nil {
		return AgentSaved{}, err
	}

	cmd := commands.NewCreateDriverCommand("", AgentToProfile(req))
	created, err := a.createDriver.Handle(ctx, cmd.WithExternalID())
	if err != nil {
		return AgentSaved{}, err
	}
	if created.ExternalID == nil {
		return AgentSaved{}, errors.New("tookan: fleet_id was not allocated")
	}
	return AgentSaved{FleetID: *created.ExternalID}, nil
}

// EditAgent updates the driver mapped to fleet_id. Fields absent from the
// payload keep their current values.
func (a *Adapter) EditAgent(ctx context.Context, req AgentRequest) (AgentSaved, error) {
	if err := a.validator.Struct(req); err != nil {
		return AgentSaved{}, err
	}
	if req.FleetID == 0 {
		return AgentSaved{}, errs.NewValueIsRequiredError("fleet_id")
	}

	driverID, err := a.resolve(ctx, ports.MappingDriver, int64(req.FleetID), "fleet_id")
	if err != nil {
		return AgentSaved{}, err
	}

	query, err := queries.NewGetDriverQuery(driverID)
	if err != nil {
		return AgentSaved{}, err
	}
	current, err := a.getDriver.Handle(ctx, query)
	if err != nil {
		return AgentSaved{}, err
	}

	cmd, err := commands.NewUpdateDriverProfileCommand(driverID, MergeAgent(current, req))
	if err != nil {
		return AgentSaved{}, err
	}
	if _, err = a.updateProfile.Handle(ctx, cmd); err != nil {
		return AgentSaved{}, err
	}
	return AgentSaved{FleetID: int64(req.FleetID)}, nil
}

// AssignTask assigns the agent to the task. Tookan assignments are manual
// overrides and skip the hub eligibility check.
func (a *Adapter) AssignTask(ctx context.Context, req AssignTaskRequest) (TaskAssigned, error) {
	if err := a.validator.Struct(req); err != nil {
		return TaskAssigned{}, err
	}

	orderID, err := a.resolve(ctx, ports.MappingOrder, int64(req.JobID), "job_id")
	if err != nil {
		return TaskAssigned{}, err
	}
	driverID, err := a.resolve(ctx, ports.MappingDriver, int64(req.FleetID), "fleet_id")
	if err != nil {
		return TaskAssigned{}, err
	}

	cmd, err := commands.NewAssignDriverCommand(orderID, driverID, nil, nil, true)
	if err != nil {
		return TaskAssigned{}, err
	}
	o, err := a.assignDriver.Handle(ctx, cmd)
	if err != nil {
		return TaskAssigned{}, err
	}

	return TaskAssigned{
		JobID:     int64(req.JobID),
		FleetID:   int64(req.FleetID),
		JobStatus: StatusToCode(o.Status()),
	}, nil
}

// GetJobDetails returns the task details of job_id.
func (a *Adapter) GetJobDetails(ctx context.Context, req GetJobDetailsRequest) (TaskDetails, error) {
	if err := a.validator.Struct(req); err != nil {
		return TaskDetails{}, err
	}

	query, err := queries.NewGetJobDetailsQuery(int64(req.JobID))
	if err != nil {
		return TaskDetails{}, err
	}
	resp, err := a.jobDetails.Handle(ctx, query)
	if err != nil {
		return TaskDetails{}, err
	}
	return OrderToTask(resp.Order, resp.JobID, resp.FleetID), nil
}

func (a *Adapter) resolve(ctx context.Context, kind ports.MappingKind, externalID int64, paramName string) (string, error) {
	query, err := queries.NewResolveExternalIDQuery(kind, externalID, paramName)
	if err != nil {
		return "", err
	}
	return a.resolveID.Handle(ctx, query)
}
