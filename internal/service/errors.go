package service

import "errors"

// Сентинельные ошибки домена: хэндлеры отображают их в 404/409,
// остальные ошибки считаются внутренними
var (
	ErrRequestNotFound  = errors.New("geo request not found")
	ErrAlreadyLocated   = errors.New("geo request already located")
	ErrPropertyNotFound = errors.New("property not found")
)
