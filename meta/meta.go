// meta/meta.go
package meta

// MAX_TURNS caps the moves of a single game; random play can shuffle forever.
const MAX_TURNS = 300

// SELF_PLAY_GAMES defines the number of games played by the selfplay command.
const SELF_PLAY_GAMES = 100

// CONFIG_ENV names the variable holding the path of a YAML game configuration.
const CONFIG_ENV = "BAGHBANDI_CONFIG"

// LOG_LEVEL_ENV names the variable holding the zerolog level.
const LOG_LEVEL_ENV = "BAGHBANDI_LOG_LEVEL"
