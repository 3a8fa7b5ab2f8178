package types

// Client -> Server
// AddPlayer:
//   name: string
//
// RemovePlayer / RenamePlayer:
//   player_id: number
//   name: string (rename only)
//
// SetLength:
//   length: "quick" | "long"
//
// SetExpansions:
//   expansions: string[]
//
// FlipCoin: {}
//
// StartDraft:
//   mode: "single" | "random" | "pick-and-ban"
//
// PickHero:
//   player_id: number
//   hero_id: string
//
// BanHero:
//   hero_id: string
//
// StartGame / StartStrategy / EndStrategy / StartNextTurn: {}
//
// SelectPlayer / MarkPlayerComplete:
//   player: number (roster index)
//
// AdjustTeamLife:
//   team: "titans" | "atlanteans"
//   delta: number
//
// IncrementWave:
//   lane: "single" | "top" | "bottom"
//
// PauseTimer / ResumeTimer:
//   timer: "strategy" | "move"
//
// RecordMatch:
//   winner: "titans" | "atlanteans"
