// embed.go 内置的默认数值配置
// 没有通过 --config 指定配置文件时使用
package main

import _ "embed"

//go:embed data/config.yaml
var defaultConfigYAML []byte
