package coach

// Topic is a guide the coach can write.
type Topic struct {
	Key    string
	Title  string
	Prompt string
}

// Topics lists the available guides in display order.
var Topics = []Topic{
	{
		Key:   "meditation",
		Title: "How to Meditate",
		Prompt: "Write a short beginner's guide on how to meditate. Use markdown with a brief " +
			"introduction, 4-6 numbered steps, and one tip for building a daily practice. " +
			"Keep it under 300 words.",
	},
	{
		Key:   "subconscious",
		Title: "Power of the Subconscious Mind",
		Prompt: "Explain in simple terms how the subconscious mind shapes daily habits and how " +
			"repetition turns a deliberate action into an automatic one. Use markdown with short " +
			"sections and end with three practical techniques. Keep it under 300 words.",
	},
	{
		Key:   "exercise",
		Title: "Sunrise Exercise Benefits",
		Prompt: "Describe the physical and mental benefits of exercising at sunrise. Use markdown " +
			"with a bulleted list of benefits and a simple 10-minute morning routine. " +
			"Keep it under 300 words.",
	},
}

// LookupTopic finds a topic by key.
func LookupTopic(key string) (Topic, bool) {
	for _, t := range Topics {
		if t.Key == key {
			return t, true
		}
	}
	return Topic{}, false
}

// TopicKeys returns the topic keys in display order.
func TopicKeys() []string {
	keys := make([]string, len(Topics))
	for i, t := range Topics {
		keys[i] = t.Key
	}
	return keys
}
