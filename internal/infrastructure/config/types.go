package config

// SettingsConfig is the root config for game.json
type SettingsConfig struct {
	Display   DisplayConfig   `json:"display"`
	Movement  MovementConfig  `json:"movement"`
	Encounter EncounterConfig `json:"encounter"`
	Battle    BattleConfig    `json:"battle"`
	Player    PlayerConfig    `json:"player"`
	Audio     AudioConfig     `json:"audio"`
	Map       string          `json:"map"` // Starting map id
}

type DisplayConfig struct {
	Title        string `json:"title"`
	ScreenWidth  int    `json:"screenWidth"`
	ScreenHeight int    `json:"screenHeight"`
	Framerate    int    `json:"framerate"`
}

type MovementConfig struct {
	Step float64 `json:"step"` // Pixels scrolled per tick
}

type EncounterConfig struct {
	Rate            float64 `json:"rate"`            // Chance per qualifying tick
	MinOverlapRatio float64 `json:"minOverlapRatio"` // Of the player's area
}

type BattleConfig struct {
	Player     string `json:"player"` // Monster id
	Enemy      string `json:"enemy"`
	Background string `json:"background"`
}

type PlayerConfig struct {
	Width  float64      `json:"width"`
	Height float64      `json:"height"`
	Frames FramesConfig `json:"frames"`
	Color  string       `json:"color"`
}

type FramesConfig struct {
	Max  int `json:"max"`
	Hold int `json:"hold"`
}

type AudioConfig struct {
	Dir    string  `json:"dir"`
	Volume float64 `json:"volume"`
}

type PositionConfig struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// ApplyDefaults fills unset values
func (c *SettingsConfig) ApplyDefaults() {
	if c.Display.ScreenWidth == 0 {
		c.Display.ScreenWidth = 1024
	}
	if c.Display.ScreenHeight == 0 {
		c.Display.ScreenHeight = 576
	}
	if c.Display.Framerate == 0 {
		c.Display.Framerate = 60
	}
	if c.Movement.Step == 0 {
		c.Movement.Step = 3
	}
	if c.Encounter.Rate == 0 {
		c.Encounter.Rate = 0.05
	}
	if c.Encounter.MinOverlapRatio == 0 {
		c.Encounter.MinOverlapRatio = 0.5
	}
	if c.Player.Width == 0 {
		c.Player.Width = 48
	}
	if c.Player.Height == 0 {
		c.Player.Height = 68
	}
	if c.Audio.Volume == 0 {
		c.Audio.Volume = 1
	}
}
