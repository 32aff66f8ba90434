package tookan

// Response is the envelope of every Tookan reply. Status mirrors the HTTP
// status code.
type Response struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// CreateTaskRequest is the create_task payload. Only the fields the fleet
// model consumes are declared.
type CreateTaskRequest struct {
	APIKey               string     `json:"api_key" validate:"required"`
	OrderID              FlexString `json:"order_id,omitempty"`
	JobDescription       string     `json:"job_description,omitempty"`
	JobPickupPhone       string     `json:"job_pickup_phone,omitempty"`
	JobPickupName        string     `json:"job_pickup_name,omitempty"`
	JobPickupAddress     string     `json:"job_pickup_address,omitempty"`
	JobPickupLatitude    *FlexFloat `json:"job_pickup_latitude" validate:"required,gte=-90,lte=90"`
	JobPickupLongitude   *FlexFloat `json:"job_pickup_longitude" validate:"required,gte=-180,lte=180"`
	JobDeliveryPhone     string     `json:"job_delivery_phone,omitempty"`
	JobDeliveryAddress   string     `json:"job_delivery_address,omitempty"`
	JobDeliveryLatitude  *FlexFloat `json:"job_delivery_latitude" validate:"required,gte=-90,lte=90"`
	JobDeliveryLongitude *FlexFloat `json:"job_delivery_longitude" validate:"required,gte=-180,lte=180"`
	CustomerName         string     `json:"customer_name,omitempty"`
	CustomerEmail        string     `json:"customer_email,omitempty" validate:"omitempty,email"`
	LayoutType           FlexInt    `json:"layout_type" validate:"gte=0,lte=2"`
	FleetID              *FlexInt64 `json:"fleet_id,omitempty" validate:"omitempty,gt=0"`
	TeamID               FlexString `json:"team_id,omitempty"`
	AutoAssignment       FlexBool   `json:"auto_assignment,omitempty"`
}

// TaskCreated is the data of a successful create_task.
type TaskCreated struct {
	JobID     int64  `json:"job_id"`
	OrderID   string `json:"order_id"`
	JobStatus int    `json:"job_status"`
}

// AgentRequest is the add_agent and edit_agent payload. FleetID is required
// for edit_agent only.
type AgentRequest struct {
	APIKey        string     `json:"api_key" validate:"required"`
	FleetID       FlexInt64  `json:"fleet_id,omitempty" validate:"gte=0"`
	Email         string     `json:"email,omitempty" validate:"omitempty,email"`
	Phone         string     `json:"phone,omitempty"`
	Username      string     `json:"username,omitempty"`
	FirstName     string     `json:"first_name,omitempty"`
	LastName      string     `json:"last_name,omitempty"`
	TransportType FlexInt    `json:"transport_type,omitempty"`
	TransportDesc string     `json:"transport_desc,omitempty"`
	License       string     `json:"license,omitempty"`
	TeamIDs       FlexString `json:"team_ids,omitempty"`
}

// AgentSaved is the data of a successful add_agent or edit_agent.
type AgentSaved struct {
	FleetID int64 `json:"fleet_id"`
}

// AssignTaskRequest is the assign_task payload.
type AssignTaskRequest struct {
	APIKey  string    `json:"api_key" validate:"required"`
	JobID   FlexInt64 `json:"job_id" validate:"required,gt=0"`
	FleetID FlexInt64 `json:"fleet_id" validate:"required,gt=0"`
}

// TaskAssigned is the data of a successful assign_task.
type TaskAssigned struct {
	JobID     int64 `json:"job_id"`
	FleetID   int64 `json:"fleet_id"`
	JobStatus int   `json:"job_status"`
}

// GetJobDetailsRequest is the get_job_details payload.
type GetJobDetailsRequest struct {
	APIKey string    `json:"api_key" validate:"required"`
	JobID  FlexInt64 `json:"job_id" validate:"required,gt=0"`
}

// TaskDetails is the outbound view of an order.
type TaskDetails struct {
	JobID                int64   `json:"job_id"`
	JobStatus            int     `json:"job_status"`
	FleetID              *int64  `json:"fleet_id"`
	OrderID              string  `json:"order_id"`
	JobDescription       string  `json:"job_description"`
	JobPickupPhone       string  `json:"job_pickup_phone"`
	JobPickupName        string  `json:"job_pickup_name"`
	JobPickupAddress     string  `json:"job_pickup_address"`
	JobPickupLatitude    float64 `json:"job_pickup_latitude"`
	JobPickupLongitude   float64 `json:"job_pickup_longitude"`
	JobDeliveryPhone     string  `json:"job_delivery_phone"`
	JobDeliveryAddress   string  `json:"job_delivery_address"`
	JobDeliveryLatitude  float64 `json:"job_delivery_latitude"`
	JobDeliveryLongitude float64 `json:"job_delivery_longitude"`
	CustomerName         string  `json:"customer_name"`
	CustomerEmail        string  `json:"customer_email"`
	LayoutType           int     `json:"layout_type"`
	TeamID               string  `json:"team_id,omitempty"`
}
