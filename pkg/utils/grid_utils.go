package utils

import "image"

// PointToTile 将世界像素坐标转换为格子坐标
// 使用整数除法（负坐标向下取整），调用方负责检查结果是否在网格范围内
//
// 返回:
//   - row: 行索引（y / tileSize）
//   - col: 列索引（x / tileSize）
func PointToTile(point image.Point, tileSize int) (row, col int) {
	return floorDiv(point.Y, tileSize), floorDiv(point.X, tileSize)
}

// TileToPoint 返回格子左上角的世界像素坐标
func TileToPoint(row, col, tileSize int) image.Point {
	return image.Pt(col*tileSize, row*tileSize)
}

// TileRect 返回格子占据的世界矩形
func TileRect(row, col, tileSize int) image.Rectangle {
	min := TileToPoint(row, col, tileSize)
	return image.Rectangle{Min: min, Max: min.Add(image.Pt(tileSize, tileSize))}
}

// floorDiv 向下取整的整数除法，-1/64 得到 -1 而不是 0
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
