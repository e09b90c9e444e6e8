package ollamamodels

// Структуры для работы с Ollama API (/api/generate)
type OllamaRequest struct {
	Model   string  `json:"model"`
	System  string  `json:"system,omitempty"`
	Prompt  string  `json:"prompt"`
	Stream  bool    `json:"stream"`
	Options Options `json:"options"`
}

type Options struct {
	Temperature   float64  `json:"temperature,omitempty"`
	TopP          float64  `json:"top_p,omitempty"`
	TopK          int      `json:"top_k,omitempty"`
	NumPredict    int      `json:"num_predict,omitempty"` // Аналог MaxTokens
	RepeatPenalty float64  `json:"repeat_penalty,omitempty"`
	Stop          []string `json:"stop,omitempty"`
}

type OllamaResponse struct {
	Model     string `json:"model"`
	CreatedAt string `json:"created_at"`
	Response  string `json:"response"`
	Done      bool   `json:"done"`
	Error     string `json:"error,omitempty"`
}

func GetInterviewConfig() Options {
	return Options{
		Temperature:   0.7,
		TopP:          0.9,
		TopK:          40,
		NumPredict:    4000, // 10 вопросов с развернутыми ответами
		RepeatPenalty: 1.1,
	}
}
