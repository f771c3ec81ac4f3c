package stream

type Config struct {
	Mqtt struct {
		URL      string `yaml:"url"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		Topics   struct {
			Stream string `yaml:"stream"`
		} `yaml:"topics"`
	} `yaml:"mqtt"`
	Animation struct {
		FrameRate    float64 `yaml:"frameRate"`
		NumPixels    int     `yaml:"numPixels"`
		CycleSeconds float64 `yaml:"cycleSeconds"`
		FadeSeconds  float64 `yaml:"fadeSeconds"`
		EnterSeconds float64 `yaml:"enterSeconds"`
		HoldSeconds  float64 `yaml:"holdSeconds"`
		ExitSeconds  float64 `yaml:"exitSeconds"`
	} `yaml:"animation"`
}
