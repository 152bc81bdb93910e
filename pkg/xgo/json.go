package xgo

import (
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ToJSON 序列化为紧凑 JSON，失败时返回错误文本
func ToJSON(v any) string {
	j, err := json.Marshal(v)
	if err != nil {
		return err.Error()
	}
	return string(j)
}

// ToJSONPretty 两空格缩进的 JSON，失败时返回错误文本
func ToJSONPretty(v any) string {
	j, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err.Error()
	}
	return string(j)
}
