package model

type Key string

type Numeral string
