package constants

// --- СТАДИИ ЗАЯВОК (колонки канбан-доски) ---
const (
	StageNew        = "new"
	StageInProgress = "in-progress"
	StageRepaired   = "repaired"
	StageScrap      = "scrap"
)

var Stages = []string{StageNew, StageInProgress, StageRepaired, StageScrap}

// Финальные стадии: такие заявки не считаются открытыми и не бывают просроченными
var TerminalStages = []string{StageRepaired, StageScrap}

func IsValidStage(stage string) bool {
	for _, s := range Stages {
		if s == stage {
			return true
		}
	}
	return false
}

func IsTerminalStage(stage string) bool {
	for _, s := range TerminalStages {
		if s == stage {
			return true
		}
	}
	return false
}

// --- ТИПЫ ЗАЯВОК ---
const (
	TypeCorrective = "corrective"
	TypePreventive = "preventive"
)

func IsValidType(requestType string) bool {
	return requestType == TypeCorrective || requestType == TypePreventive
}

// Метка категории для заявок, чье оборудование удалено или без категории
const UncategorizedLabel = "Uncategorized"

// Формат дат, приходящих из форм (scheduledDate, scrapDate и т.д.)
const DateOnly = "2006-01-02"
