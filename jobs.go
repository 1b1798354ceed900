package domalens

func (d *Domalens) runJobs() {
	if _, err := d.scheduler.Every(d.cfg.Stats.TransactionsInterval).WaitForSchedule().SingletonMode().Do(d.updateTransactions); err != nil {
		log.Error("schedule transactions counter failed", "interval", d.cfg.Stats.TransactionsInterval, "err", err)
	}
	d.scheduler.StartAsync()
}

// updateTransactions adds 0, 1 or 2 to the 24h transaction counter.
func (d *Domalens) updateTransactions() {
	d.transactions.Add(int64(d.rnd.Intn(3)))
}
