package demo

import (
	"context"
	"fmt"

	"github.com/arthur-debert/sigslot/pkg/signal"
)

func init() {
	register(Scenario{
		Name:        "int-int",
		Description: "two int(int) handlers, identity and double, collected in order",
		Run:         runIntInt,
	})
	register(Scenario{
		Name:        "disconnect",
		Description: "three void handlers disconnected one at a time",
		Run:         runDisconnect,
	})
	register(Scenario{
		Name:        "variadic",
		Description: "sum and product over nine arguments",
		Run:         runVariadic,
	})
	register(Scenario{
		Name:        "filtered",
		Description: "multiples of the argument, keeping only even results",
		Run:         runFiltered,
	})
	register(Scenario{
		Name:        "transfer",
		Description: "moving a connection leaves the source inert",
		Run:         runTransfer,
	})
	register(Scenario{
		Name:        "scope",
		Description: "a scope releases its handlers when closed",
		Run:         runScope,
	})
}

func runIntInt(_ context.Context, env Env) (*Result, error) {
	res := &Result{Scenario: "int-int"}
	sig := signal.New[int, int](signal.WithName("int-int"), signal.WithLogger(env.Logger))
	defer sig.Close()

	sig.Connect(func(i int) int { return i })
	sig.Connect(func(i int) int { return i * 2 })
	res.record("connect identity, double", "ok", sig.Len())

	for _, arg := range env.Args {
		got := sig.Collect(arg)
		res.record(fmt.Sprintf("collect(%d)", arg), got, sig.Len())
		if err := expect(res.Scenario, fmt.Sprintf("collect(%d)", arg), []int{arg, arg * 2}, got); err != nil {
			return res, err
		}
	}
	return res, nil
}

func runDisconnect(_ context.Context, env Env) (*Result, error) {
	res := &Result{Scenario: "disconnect"}
	sig := signal.New[signal.Void, signal.Void](signal.WithName("disconnect"), signal.WithLogger(env.Logger))

	conns := make([]*signal.Connection, 3)
	for i := range conns {
		conns[i] = signal.ConnectVoid(sig, func(signal.Void) {})
	}
	res.record("connect 3 handlers", "ok", sig.Len())

	sizes := []int{sig.Len()}
	for i, conn := range conns {
		removed := conn.Disconnect()
		res.record(fmt.Sprintf("disconnect #%d", i+1), removed, sig.Len())
		sizes = append(sizes, sig.Len())
	}
	if err := expect(res.Scenario, "sizes", []int{3, 2, 1, 0}, sizes); err != nil {
		return res, err
	}

	again := conns[0].Disconnect()
	res.record("disconnect #1 again", again, sig.Len())
	return res, expect(res.Scenario, "second disconnect", false, again)
}

func runVariadic(_ context.Context, env Env) (*Result, error) {
	res := &Result{Scenario: "variadic"}
	sig := signal.New[[9]int, int](signal.WithName("variadic"), signal.WithLogger(env.Logger))
	defer sig.Close()

	sig.Connect(func(n [9]int) int {
		sum := 0
		for _, v := range n {
			sum += v
		}
		return sum
	})
	sig.Connect(func(n [9]int) int {
		product := 1
		for _, v := range n {
			product *= v
		}
		return product
	})
	res.record("connect sum, product", "ok", sig.Len())

	args := [9]int{1, 2, 3, 4, 5, 6, 7, 8, 9}
	got := sig.Collect(args)
	res.record(fmt.Sprintf("collect%v", args), got, sig.Len())
	return res, expect(res.Scenario, "collect", []int{45, 362880}, got)
}

func runFiltered(_ context.Context, env Env) (*Result, error) {
	res := &Result{Scenario: "filtered"}
	sig := signal.New[int, int](signal.WithName("filtered"), signal.WithLogger(env.Logger))
	defer sig.Close()

	for k := 1; k <= 4; k++ {
		k := k
		sig.Connect(func(i int) int { return i * k })
	}
	res.record("connect x1..x4", "ok", sig.Len())

	even := func(r int) bool { return r%2 == 0 }
	for _, arg := range env.Args {
		all := sig.Collect(arg)
		kept := sig.CollectIf(even, arg)
		res.record(fmt.Sprintf("collect-if-even(%d)", arg), kept, sig.Len())

		var want []int
		for _, r := range all {
			if even(r) {
				want = append(want, r)
			}
		}
		if want == nil {
			want = []int{}
		}
		if err := expect(res.Scenario, fmt.Sprintf("collect-if-even(%d)", arg), want, kept); err != nil {
			return res, err
		}
	}
	return res, nil
}

func runTransfer(_ context.Context, env Env) (*Result, error) {
	res := &Result{Scenario: "transfer"}
	sig := signal.New[int, int](signal.WithName("transfer"), signal.WithLogger(env.Logger))
	defer sig.Close()

	src := sig.Connect(func(i int) int { return i })
	res.record("connect", src.Connected(), sig.Len())

	dst := src.Transfer()
	res.record("transfer", fmt.Sprintf("source=%t destination=%t", src.Connected(), dst.Connected()), sig.Len())

	fromSource := src.Disconnect()
	res.record("disconnect source", fromSource, sig.Len())
	if err := expect(res.Scenario, "source disconnect", false, fromSource); err != nil {
		return res, err
	}

	fromDestination := dst.Disconnect()
	res.record("disconnect destination", fromDestination, sig.Len())
	if err := expect(res.Scenario, "destination disconnect", true, fromDestination); err != nil {
		return res, err
	}
	return res, expect(res.Scenario, "slots", 0, sig.Len())
}

func runScope(_ context.Context, env Env) (*Result, error) {
	res := &Result{Scenario: "scope"}
	sig := signal.NewVoid[int](signal.WithName("scope"), signal.WithLogger(env.Logger))
	defer sig.Close()

	calls := 0
	func() {
		scope := signal.NewScope()
		defer scope.Close()

		for i := 0; i < 3; i++ {
			scope.Track(signal.ConnectVoid(sig, func(int) { calls++ }))
		}
		res.record("track 3 handlers", scope.Len(), sig.Len())

		for _, arg := range env.Args {
			sig.Emit(arg)
		}
		res.record("emit", fmt.Sprintf("%d calls", calls), sig.Len())
	}()
	res.record("leave scope", "released", sig.Len())

	if err := expect(res.Scenario, "calls", 3*len(env.Args), calls); err != nil {
		return res, err
	}
	return res, expect(res.Scenario, "slots after scope", 0, sig.Len())
}
