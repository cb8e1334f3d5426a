package seeders

import (
	"time"

	"maintenance-system/internal/entities"
	"maintenance-system/pkg/constants"
)

// Демо-набор GearGuard Inc: три команды, пять категорий, пять единиц
// оборудования и шесть заявок в разных стадиях. Даты создания заявок
// отсчитываются от текущего момента, чтобы дашборд показывал живую картину
// (просрочки, календарь) при любом времени запуска.

func demoTeams() []entities.MaintenanceTeam {
	return []entities.MaintenanceTeam{
		{ID: "team1", Name: "Mechanics", Members: []string{"John Doe", "Jane Smith", "Mike Johnson"}},
		{ID: "team2", Name: "Electricians", Members: []string{"Sarah Williams", "Tom Brown"}},
		{ID: "team3", Name: "IT Support", Members: []string{"Alex Chen", "Emily Davis", "Chris Wilson"}},
	}
}

func demoCategories() []entities.Category {
	return []entities.Category{
		{ID: "cat1", Name: "Manufacturing", Responsible: "John Doe", Company: "GearGuard Inc"},
		{ID: "cat2", Name: "Computer", Responsible: "Alex Chen", Company: "GearGuard Inc"},
		{ID: "cat3", Name: "Vehicle", Responsible: "Mike Johnson", Company: "GearGuard Inc"},
		{ID: "cat4", Name: "Power", Responsible: "Sarah Williams", Company: "GearGuard Inc"},
		{ID: "cat5", Name: "Server", Responsible: "Emily Davis", Company: "GearGuard Inc"},
	}
}

func demoEquipment() []entities.Equipment {
	return []entities.Equipment{
		{
			ID: "eq1", Name: "CNC Machine #1", SerialNumber: "CNC-2023-001",
			PurchaseDate: "2023-01-15", Warranty: "2025-01-15",
			Location: "Factory Floor A", Department: "Production",
			TeamID: "team1", TechnicianID: "John Doe", Category: "Manufacturing",
		},
		{
			ID: "eq2", Name: "Laptop Dell XPS", SerialNumber: "DELL-2024-042",
			PurchaseDate: "2024-03-10", Warranty: "2027-03-10",
			Location: "Office 3rd Floor", Department: "IT", Employee: "Robert Martinez",
			TeamID: "team3", TechnicianID: "Alex Chen", Category: "Computer",
		},
		{
			ID: "eq3", Name: "Generator Backup", SerialNumber: "GEN-2022-005",
			PurchaseDate: "2022-06-20", Warranty: "2024-06-20",
			Location: "Basement", Department: "Facilities",
			TeamID: "team2", TechnicianID: "Sarah Williams", Category: "Power",
		},
		{
			ID: "eq4", Name: "Forklift #3", SerialNumber: "FRK-2021-003",
			PurchaseDate: "2021-09-05", Warranty: "2023-09-05",
			Location: "Warehouse", Department: "Logistics",
			TeamID: "team1", TechnicianID: "Mike Johnson", Category: "Vehicle",
		},
		{
			ID: "eq5", Name: "Server Rack #2", SerialNumber: "SRV-2023-012",
			PurchaseDate: "2023-11-01", Warranty: "2028-11-01",
			Location: "Data Center", Department: "IT",
			TeamID: "team3", TechnicianID: "Emily Davis", Category: "Server",
		},
	}
}

func demoRequests(now time.Time) []entities.MaintenanceRequest {
	day := 24 * time.Hour
	return []entities.MaintenanceRequest{
		{
			ID: "req1", Subject: "Oil Leak Detected", EquipmentID: "eq1",
			Type: constants.TypeCorrective, Stage: constants.StageNew,
			Priority: 3, TechnicianID: "John Doe", TeamID: "team1",
			Comments:  []entities.Comment{},
			CreatedAt: now.Add(-2 * day), UpdatedAt: now.Add(-2 * day),
		},
		{
			ID: "req2", Subject: "Screen Flickering Issue", EquipmentID: "eq2",
			Type: constants.TypeCorrective, Stage: constants.StageInProgress,
			Duration: 2, Priority: 2, TechnicianID: "Alex Chen", TeamID: "team3",
			Comments:  []entities.Comment{},
			CreatedAt: now.Add(-1 * day), UpdatedAt: now.Add(-1 * day),
		},
		{
			ID: "req3", Subject: "Monthly Preventive Check", EquipmentID: "eq3",
			Type: constants.TypePreventive, Stage: constants.StageNew,
			ScheduledDate: now.Add(5 * day).Format(constants.DateOnly),
			Priority:      1, TechnicianID: "Sarah Williams", TeamID: "team2",
			Comments:  []entities.Comment{},
			CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: "req4", Subject: "Brake System Repair", EquipmentID: "eq4",
			Type: constants.TypeCorrective, Stage: constants.StageRepaired,
			Duration: 5, Priority: 3, TechnicianID: "Mike Johnson", TeamID: "team1",
			Comments:  []entities.Comment{},
			CreatedAt: now.Add(-7 * day), UpdatedAt: now.Add(-7 * day),
		},
		{
			ID: "req5", Subject: "Quarterly Server Maintenance", EquipmentID: "eq5",
			Type: constants.TypePreventive, Stage: constants.StageNew,
			ScheduledDate: now.Add(10 * day).Format(constants.DateOnly),
			Priority:      2, TechnicianID: "Emily Davis", TeamID: "team3",
			Comments:  []entities.Comment{},
			CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: "req6", Subject: "Overheating Problem", EquipmentID: "eq1",
			Type: constants.TypeCorrective, Stage: constants.StageNew,
			Priority: 3, TechnicianID: "John Doe", TeamID: "team1",
			Comments:  []entities.Comment{},
			CreatedAt: now.Add(-5 * day), UpdatedAt: now.Add(-5 * day),
		},
	}
}
