package openaicompat

import "time"

const (
	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 60 * time.Second

	QwenBaseURL     = "https://dashscope-intl.aliyuncs.com/compatible-mode/v1"
	QwenModel       = "qwen-plus"
	DeepSeekBaseURL = "https://api.deepseek.com/v1"
	DeepSeekModel   = "deepseek-chat"
)

// defaults maps a vendor name to its base URL and model.
var defaults = map[string][2]string{
	"qwen":     {QwenBaseURL, QwenModel},
	"alibaba":  {QwenBaseURL, QwenModel},
	"deepseek": {DeepSeekBaseURL, DeepSeekModel},
}
