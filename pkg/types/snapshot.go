package types

// Server -> Client
// StateSnapshot:
//   version: number
//   state:
//     stage: "setup" | "drafting" | "playing"
//     length: "quick" | "long"
//     coinSide: "titans" | "atlanteans"
//     roster: Player[] // id|name|team|hero|lane
//     draft: DraftState? // mode, currentTeam, available, options, selected,
//                        // banned, step, sequence, complete
//     game: GameState?   // round, turn, waves, lives, phase, activeHero,
//                        // completed, allMoved
//     strategyTimer / moveTimer: { remaining: number, active: boolean }
//     sound: string?     // fire-and-forget effect name, e.g. "phaseChange"
//     problems: { code, message }[]? // validation failures, shown verbatim
//     recorded: boolean
//
// Error:
//   error: string
