package cars

import "time"

// Car is a vehicle registered by a user.
type Car struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Plate     string    `json:"plate"`
	Model     string    `json:"model"`
	Plug      string    `json:"plug"`
	CreatedAt time.Time `json:"created_at"`
}

// CarType is a catalog entry (model + plug standard), readable publicly.
type CarType struct {
	ID    string `json:"id"`
	Model string `json:"model"`
	Plug  string `json:"plug"`
}

type createCarRequest struct {
	Plate string `json:"plate"`
	Model string `json:"model"`
	Plug  string `json:"plug"`
}
