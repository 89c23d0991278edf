// internal/config/config.go
package config

const (
	GridRows = 20
	GridCols = 30

	StartingMoney = 150
	StartingLives = 20

	MaxDeltaTime = 0.06

	// Бонус за зачистку волны: WaveClearBonusBase + номер_волны*WaveClearBonusPerWave.
	WaveClearBonusBase    = 10
	WaveClearBonusPerWave = 5

	// Доля стоимости, возвращаемая при сносе башни. По умолчанию снос
	// бесплатен в обе стороны: денег не возвращает и не берёт.
	RemoveRefundFraction = 0.0

	// Тактовая частота серверного цикла симуляции.
	TickRate = 20
)
