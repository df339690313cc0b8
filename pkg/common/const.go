package common

const (
	KEY_PREDICTION = "prediction:%s"
)
