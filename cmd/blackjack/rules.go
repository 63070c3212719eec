package main

import "fmt"

type RulesCmd struct{}

func (c *RulesCmd) Run() error {
	fmt.Println("=== Blackjack ===")
	fmt.Println("1. Try to get as close to 21 without going over.")
	fmt.Println("2. Number cards are worth their number.")
	fmt.Println("3. Face cards (Jack, Queen, King) are worth 10.")
	fmt.Println("4. Ace can be 1 or 11.")
	fmt.Println("5. Dealer hits until 17 or higher and stands on any 17.")
	fmt.Println("6. Bets pay even money; a tie pushes the bet back.")
	return nil
}
