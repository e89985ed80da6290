package client

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/cardastika-api/internal/handlers/equipment/v1alpha1"
)

var callCmd = &cobra.Command{
	Use:   "call [method] [json]",
	Short: "Call any RPC with a JSON request body",
	Long: `Send a raw JSON object to one of the equipment RPCs. Examples:

  call GetSummary
  call AddItem '{"item":{"slot":"hat","element":"fire","rarity":"epic"}}'
  call PreviewCombat '{"mode":"arena","outgoingDamage":100,"incomingDamage":80,"maxHp":1000}'`,
	Args: cobra.RangeArgs(1, 2),
	RunE: call,
}

func call(cmd *cobra.Command, args []string) error {
	method := args[0]
	if !slices.Contains(v1alpha1.MethodNames(), method) {
		return fmt.Errorf("unknown method %q, expected one of: %s", method, strings.Join(v1alpha1.MethodNames(), ", "))
	}

	body := ""
	if len(args) == 2 {
		body = args[1]
	}

	req, err := v1alpha1.FromJSON([]byte(body))
	if err != nil {
		return err
	}
	if ownerID != "" {
		if _, set := req.GetFields()["ownerId"]; !set {
			fields := req.AsMap()
			fields["ownerId"] = ownerID
			return invoke(method, fields)
		}
	}
	return send(method, req)
}
