package configkeys

const (
	delimiter = "."

	ConfigPrefix = "config"

	ConfigEffectPrefix = ConfigPrefix + delimiter + "effect"

	ConfigEffectLogPrefix     = ConfigEffectPrefix + delimiter + "log"
	ConfigEffectLogLevel      = ConfigEffectLogPrefix + delimiter + "level"
	ConfigEffectLogBufferSize = ConfigEffectLogPrefix + delimiter + "buffer_size"

	ConfigEffectConsolePrefix     = ConfigEffectPrefix + delimiter + "console"
	ConfigEffectConsoleBufferSize = ConfigEffectConsolePrefix + delimiter + "buffer_size"
	ConfigEffectConsolePrompt     = ConfigEffectConsolePrefix + delimiter + "prompt"

	ConfigEffectBindingPrefix     = ConfigEffectPrefix + delimiter + "binding"
	ConfigEffectBindingNumWorkers = ConfigEffectBindingPrefix + delimiter + "num_workers"

	ConfigPipelinePrefix   = ConfigPrefix + delimiter + "pipeline"
	ConfigPipelineMemoSize = ConfigPipelinePrefix + delimiter + "memo_size"
)
