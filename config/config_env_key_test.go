package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"store": map[string]any{
			"provider":              "memory",
			"restaurantsCollection": "restaurants",
			"errorLogsCollection":   "error_logs",
		},
		"places": map[string]any{
			"apiKey":         "",
			"minQueryLength": 3,
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"env": map[string]any{
			"instanceId": "",
			"log": map[string]any{
				"level": "info",
			},
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "STORE_PROVIDER", want: "store.provider"},
		{envKey: "STORE_RESTAURANTSCOLLECTION", want: "store.restaurantsCollection"},
		{envKey: "STORE_ERROR_LOGS_COLLECTION", want: "store.error.logs.collection"},
		{envKey: "PLACES_APIKEY", want: "places.apiKey"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "ENV_INSTANCEID", want: "env.instanceId"},
		{envKey: "ENV_LOG_LEVEL", want: "env.log.level"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestNormalizeToken_StripsSeparators(t *testing.T) {
	tests := map[string]string{
		"minQueryLength": "minquerylength",
		"error_logs":     "errorlogs",
		"Log-Level":      "loglevel",
	}

	for in, want := range tests {
		if got := normalizeToken(in); got != want {
			t.Fatalf("normalizeToken(%q) = %q, want %q", in, got, want)
		}
	}
}
