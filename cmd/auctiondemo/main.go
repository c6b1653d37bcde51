// Command auctiondemo runs one auction from the console against the default
// seller catalog and prints every bid, cheapest first.
package main

import (
	"bufio"
	"cmp"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"slices"
	"steel-auction-service/internal/adapters/geocode"
	"steel-auction-service/internal/catalog"
	"steel-auction-service/internal/config"
	"steel-auction-service/internal/domain"
	"steel-auction-service/internal/services"
	"strconv"
	"strings"
	"text/tabwriter"
)

const (
	defaultAddress      = "Central US Warehouse"
	defaultQuantityTons = 10_000.0
)

func main() {
	seed := flag.Int64("seed", -1, "jitter seed for the seller catalog (negative: time-seeded)")
	flag.Parse()

	var rng catalog.RandSource
	if *seed >= 0 {
		rng = catalog.NewSeededRand(uint64(*seed))
	}

	if err := run(context.Background(), os.Stdin, os.Stdout, catalog.DefaultSellers(rng)); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, in io.Reader, out io.Writer, sellers []domain.Seller) error {
	sc := bufio.NewScanner(in)

	address := prompt(sc, out, fmt.Sprintf("Buyer address [%s]: ", defaultAddress))
	if address == "" {
		address = defaultAddress
	}

	qtyInput := prompt(sc, out, fmt.Sprintf("Quantity in tons [%.0f]: ", defaultQuantityTons))
	qty, ok := parseQuantity(qtyInput)
	if !ok && qtyInput != "" {
		fmt.Fprintf(out, "Invalid quantity %q, using %.0f tons.\n", qtyInput, defaultQuantityTons)
	}

	resolver := geocode.NewStaticResolver(geocode.DefaultAddressBook())

	result, err := services.RunAuctionForAddress(ctx, sellers, address, resolver, qty)
	if errors.Is(err, domain.ErrLocationNotFound) {
		known, _ := resolver.KnownAddresses(ctx)
		fmt.Fprintf(out, "Unknown address %q. Try one of: %s\n", address, strings.Join(known, "; "))
		return err
	}
	if err != nil {
		return err
	}

	return printResult(out, result)
}

func prompt(sc *bufio.Scanner, out io.Writer, label string) string {
	fmt.Fprint(out, label)
	if !sc.Scan() {
		return ""
	}
	return strings.TrimSpace(sc.Text())
}

// parseQuantity accepts thousands separators ("5,000") and falls back to the
// default for anything that is not a positive finite number within the
// service's order cap.
func parseQuantity(s string) (float64, bool) {
	qty, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(s), ",", ""), 64)
	if err != nil || services.ValidateQuantity(qty) != nil || qty > config.DefaultMaxQuantityTons {
		return defaultQuantityTons, false
	}
	return qty, true
}

func printResult(out io.Writer, result *domain.AuctionResult) error {
	bids := slices.Clone(result.Bids)
	slices.SortStableFunc(bids, func(a, b domain.Bid) int {
		return cmp.Compare(a.Quote.NetPricePerTon, b.Quote.NetPricePerTon)
	})

	fmt.Fprintf(out, "\nBuyer location: %s\n\n", result.BuyerLocation)

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Seller\tKm\tMode\tEAF\tCost/t\tBuffer/t\tOffer/t\tGross0 $\tVol %\tVol disc $\tGross $\tEAF disc $\tNet/t\tTotal net $\t")
	for _, b := range bids {
		q := b.Quote
		eaf := "N"
		if q.IsEAF {
			eaf = "Y"
		}
		fmt.Fprintf(tw, "%s\t%.1f\t%s\t%s\t%.2f\t%.2f\t%.2f\t%.0f\t%.1f%%\t%.0f\t%.0f\t%.0f\t%.2f\t%.0f\t\n",
			q.SellerName, q.DistanceKm, q.TransportMode, eaf,
			q.CostPerTon, q.RiskBufferPerTon, q.OfferPricePerTon,
			q.GrossTotalUndiscounted, q.VolumeDiscountPct*100, q.VolumeDiscountTotal, q.GrossTotal,
			q.EAFDiscountTotal, q.NetPricePerTon, b.TotalNetCost(),
		)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	w := result.Winner
	_, err := fmt.Fprintf(out, "\nWinner: %s at $%.2f/t (total $%.2f for %.0f t, %s)\n",
		w.Seller.Name, w.Quote.NetPricePerTon, w.TotalNetCost(), w.QuantityTons, w.Quote.TransportMode)
	return err
}
