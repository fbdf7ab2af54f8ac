package domain

import "strings"

// Destination 号码所属国家和运营商，名称必须稳定
type Destination struct {
	Country  string
	Operator string
}

// RoutingIdentifier 路由标识 {project}_{country}_{operator}，同时是队列名
func RoutingIdentifier(projectReference string, dest Destination) string {
	return projectReference + "_" + dest.Country + "_" + dest.Operator
}

// RoutingKey topic 交换机使用 . 作为分隔符
func RoutingKey(routingIdentifier string) string {
	return strings.ReplaceAll(routingIdentifier, "_", ".")
}
