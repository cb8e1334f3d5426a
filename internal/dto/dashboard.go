package dto

// Счетчики по колонкам канбан-доски.
type StageCountsDTO struct {
	New        int `json:"new"`
	InProgress int `json:"in_progress"`
	Repaired   int `json:"repaired"`
	Scrap      int `json:"scrap"`
}

type CountByGroupDTO struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type DashboardStatsDTO struct {
	TechnicianLoad    int               `json:"technician_load"`
	OpenRequests      int               `json:"open_requests"`
	OverdueRequests   int               `json:"overdue_requests"`
	CriticalEquipment int               `json:"critical_equipment"`
	ByStage           StageCountsDTO    `json:"by_stage"`
	ByTeam            []CountByGroupDTO `json:"by_team"`
	ByCategory        []CountByGroupDTO `json:"by_category"`
}
