package server

import (
	"fmt"

	"github.com/lox/riichi/mahjong"
)

// Request asks for one hand to be evaluated. Seat defaults to east and an
// empty round wind leaves the table context unset.
type Request struct {
	ID        string `json:"id"`
	Hand      string `json:"hand"`
	Seat      string `json:"seat,omitempty"`
	Closed    bool   `json:"closed"`
	Riichi    bool   `json:"riichi"`
	RoundWind string `json:"round_wind,omitempty"`
}

// Response answers a Request with the same ID. Error is set instead of the
// verdict when the request could not be evaluated.
type Response struct {
	ID      string          `json:"id"`
	Winning bool            `json:"winning"`
	Shape   mahjong.Shape   `json:"shape"`
	Yaku    []mahjong.Match `json:"yaku"`
	Han     int             `json:"han"`
	Error   string          `json:"error,omitempty"`
}

func (r *Request) decode() (mahjong.Hand, *mahjong.PlayerInfo, *mahjong.TableInfo, error) {
	hand, err := mahjong.ParseHand(r.Hand)
	if err != nil {
		return nil, nil, nil, err
	}

	player := &mahjong.PlayerInfo{
		Seat:         mahjong.SeatEast,
		IsHandClosed: r.Closed,
		CalledRiichi: r.Riichi,
	}
	if r.Seat != "" {
		if player.Seat, err = mahjong.ParseSeat(r.Seat); err != nil {
			return nil, nil, nil, err
		}
	}

	var table *mahjong.TableInfo
	if r.RoundWind != "" {
		wind, err := mahjong.ParseSeat(r.RoundWind)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("round wind: %w", err)
		}
		table = &mahjong.TableInfo{RoundWind: wind}
	}
	return hand, player, table, nil
}

func evaluate(ev *mahjong.Evaluator, req *Request) *Response {
	resp := &Response{ID: req.ID, Yaku: []mahjong.Match{}}

	hand, player, table, err := req.decode()
	if err != nil {
		resp.Error = err.Error()
		return resp
	}
	res, err := ev.Evaluate(hand, player, table)
	if err != nil {
		resp.Error = err.Error()
		return resp
	}

	resp.Winning = res.Winning
	resp.Shape = res.Shape
	resp.Yaku = res.Yaku
	resp.Han = res.Han()
	return resp
}
