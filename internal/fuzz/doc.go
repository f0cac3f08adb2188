// Package fuzztests houses Go fuzz harnesses for the evaluation pipeline
// (text -> lexer -> parser -> roll). They guard against panics, hangs and
// runaway allocation on arbitrary input.
//
// Назначение: прогонять произвольные байты через лексер, парсер и бросок с
// ограничениями на число костей и граней.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
package fuzztests
