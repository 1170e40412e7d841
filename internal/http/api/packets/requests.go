package packets

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateCurrentProfileRequest struct {
	Name   string  `json:"name" binding:"required"`
	Email  string  `json:"email" binding:"required,email"`
	Avatar *string `json:"avatar"`
}

// EntryRequest is used for both create and full-object update.
type EntryRequest struct {
	Title     string `json:"title" binding:"required"`
	Type      string `json:"type" binding:"required,oneof=Video Flyer Animation Newsletter Other"`
	Link      string `json:"link" binding:"required,url"`
	Date      string `json:"date" binding:"required"`
	CreatorID string `json:"creator_id"`
	ClientID  string `json:"client_id"`
}

type CreatePersonRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"required,oneof=ADMIN CREATOR"`
}

type UpdatePersonRequest struct {
	Name     string  `json:"name" binding:"required"`
	Email    string  `json:"email" binding:"required,email"`
	Password *string `json:"password"`
	Role     string  `json:"role" binding:"required,oneof=ADMIN CREATOR"`
}

type ClientRequest struct {
	Name string `json:"name" binding:"required"`
}

type CreateNoticeRequest struct {
	Title   string `json:"title"`
	Message string `json:"message" binding:"required"`
	Type    string `json:"type" binding:"omitempty,oneof=info warning urgent"`
}

type UpdateNoticeRequest struct {
	Title   *string `json:"title"`
	Message *string `json:"message"`
	Type    *string `json:"type" binding:"omitempty,oneof=info warning urgent"`
}

type HolidayRequest struct {
	Name string `json:"name" binding:"required"`
	Date string `json:"date" binding:"required"`
}

type ShootingRequest struct {
	Title      string   `json:"title" binding:"required"`
	ClientID   string   `json:"client_id" binding:"required"`
	Date       string   `json:"date" binding:"required"`
	Time       string   `json:"time"`
	Location   string   `json:"location"`
	CreatorIDs []string `json:"creator_ids"`
}

type UpdateSettingsRequest struct {
	AppName           string `json:"app_name" binding:"required"`
	DailyGoal         int    `json:"daily_goal" binding:"required,min=1"`
	MonthlyClientGoal int    `json:"monthly_client_goal" binding:"required,min=1"`
	AllowWeekends     bool   `json:"allow_weekends"`
	Theme             string `json:"theme" binding:"required,oneof=light dark"`
	PrimaryColor      string `json:"primary_color"`
}
